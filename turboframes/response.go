package turboframes

import (
	"github.com/labstack/echo/v4"

	"github.com/sargassum-world/turboresponse/responding"
)

// Response is an eager Turbo Frame response: the wrapper markup is applied
// once at construction, and the body never changes afterward. Unlike stream
// responses, frame responses keep the host framework's default content type.
type Response struct {
	base *responding.Response
}

// NewResponse composes an eager frame response.
func NewResponse(domID string, content []byte) *Response {
	return &Response{base: responding.NewResponse("", Render(domID, content))}
}

// Body returns the wrapped body. Repeated calls return the same bytes.
func (r *Response) Body() []byte {
	return r.base.Body
}

// Base exposes the owned transport response for status or header adjustment.
func (r *Response) Base() *responding.Response {
	return r.base
}

// WriteTo sends the response over the Echo context.
func (r *Response) WriteTo(c echo.Context) error {
	return r.base.WriteTo(c)
}
