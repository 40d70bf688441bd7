// Package turbo annotates requests with the Turbo protocol signals the client
// sends: whether it accepts Turbo Streams and which frame it's navigating.
package turbo

import (
	"github.com/labstack/echo/v4"

	"github.com/sargassum-world/turboresponse/turboframes"
	"github.com/sargassum-world/turboresponse/turbostreams"
)

const contextKey = "turboresponse.data"

// Data describes the Turbo signals on a request.
type Data struct {
	Stream bool   // client accepts a Turbo Stream response
	Frame  string // DOM id of the frame being navigated, if any
}

// Requested reports whether the request came from Turbo at all.
func (d Data) Requested() bool {
	return d.Stream || d.Frame != ""
}

// Middleware stashes Turbo request [Data] in the request context for handlers
// to look up with [GetData].
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header
			c.Set(contextKey, Data{
				Stream: turbostreams.Accepted(header),
				Frame:  turboframes.Requested(header),
			})
			return next(c)
		}
	}
}

// GetData returns the Turbo [Data] recorded by [Middleware], or the zero Data
// if the middleware didn't run.
func GetData(c echo.Context) Data {
	data, _ := c.Get(contextKey).(Data)
	return data
}
