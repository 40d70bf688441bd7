// Package forms adjusts form-handling responses for Turbo, which requires
// invalid-form submissions to come back with an Unprocessable Entity status.
package forms

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sargassum-world/turboresponse/responding"
)

// InvalidHandler produces the response for a rejected form submission.
type InvalidHandler func(c echo.Context) (*responding.Response, error)

// Unprocessable wraps an invalid-form operation so its response always
// carries status 422, whatever status the wrapped operation set. The wrapped
// operation runs to completion first; its body and headers pass through
// untouched.
func Unprocessable(next InvalidHandler) InvalidHandler {
	return func(c echo.Context) (*responding.Response, error) {
		response, err := next(c)
		if err != nil {
			return nil, err
		}
		response.Status = http.StatusUnprocessableEntity
		return response, nil
	}
}
