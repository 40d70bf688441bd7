package turbostreams

import (
	"github.com/labstack/echo/v4"

	"github.com/sargassum-world/turboresponse/responding"
)

// Response is an eager Turbo Stream response: the wrapper markup is applied
// once at construction, and the body never changes afterward.
type Response struct {
	base *responding.Response
}

// NewResponse composes an eager single-instruction response.
func NewResponse(action Action, target string, content []byte) (*Response, error) {
	return NewMultiResponse(Stream{Action: action, Target: target, Content: content})
}

// NewMultiResponse composes an eager response carrying one wrapper element
// per instruction.
func NewMultiResponse(streams ...Stream) (*Response, error) {
	body, err := RenderAll(streams...)
	if err != nil {
		return nil, err
	}
	return &Response{base: responding.NewResponse(ContentType, body)}, nil
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
