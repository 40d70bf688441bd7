// Package responding provides the transport-facing base for composed Turbo
// responses: a response record owned by the composition layer, the render data
// passed to template engines, and the template engine collaborator interface.
package responding

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the base transport response owned by a composed Turbo response.
// It carries the concerns the host framework cares about (status, content
// type, extra headers, body) without inheriting from any framework response
// type; composed responses wrap it and overlay only body-wrapping behavior.
type Response struct {
	Status      int
	ContentType string
	Header      http.Header
	Body        []byte
}

// NewResponse creates a Response with OK status and the given content type.
// An empty content type means the host framework's default HTML content type.
func NewResponse(contentType string, body []byte) *Response {
	return &Response{
		Status:      http.StatusOK,
		ContentType: contentType,
		Header:      make(http.Header),
		Body:        body,
	}
}

// WriteTo sends the response over the Echo context, stamping a fingerprint
// ETag unless one was already set.
func (r *Response) WriteTo(c echo.Context) error {
	header := c.Response().Header()
	for key, values := range r.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}
	if header.Get("ETag") == "" {
		header.Set("ETag", Fingerprint(r.Body))
	}

	contentType := r.ContentType
	if contentType == "" {
		contentType = echo.MIMETextHTMLCharsetUTF8
	}
	return c.Blob(r.Status, contentType, r.Body)
}
