package turboframes

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/responding"
)

// Reserved render data keys injected for frame templates.
const (
	DataKeyDomID   = "turbo_frame_dom_id"
	DataKeyIsFrame = "is_turbo_frame"
)

// TemplateResponse is a two-phase Turbo Frame response: construction records
// the configuration and overlays the reserved render data keys, and
// materialization renders the body through the template engine and applies
// the wrapper markup.
type TemplateResponse struct {
	engine responding.TemplateRenderer
	req    *http.Request
	names  []string
	data   responding.Data
	domID  string

	base *responding.Response
	body []byte // memoized by Materialize
}

// NewTemplateResponse composes a deferred response for the ordered template
// name candidates. The DOM id must already be validated by the caller;
// reserved keys silently win over caller-supplied data keys of the same name.
func NewTemplateResponse(
	engine responding.TemplateRenderer, req *http.Request, names []string,
	data responding.Data, domID string,
) *TemplateResponse {
	return &TemplateResponse{
		engine: engine,
		req:    req,
		names:  names,
		data: data.MergeReserved(responding.Data{
			DataKeyDomID:   domID,
			DataKeyIsFrame: true,
		}),
		domID: domID,
		base:  responding.NewResponse("", nil),
	}
}

// Data returns the render data which will be passed to the template engine,
// including the reserved keys.
func (r *TemplateResponse) Data() responding.Data {
	return r.data
}

// Materialize renders the body through the template engine and wraps it,
// memoizing the result; later calls return the same bytes without rendering
// again.
func (r *TemplateResponse) Materialize() ([]byte, error) {
	if r.body != nil {
		return r.body, nil
	}
	var rendered bytes.Buffer
	if err := r.engine.Render(&rendered, r.names, r.data, r.req); err != nil {
		return nil, errors.Wrapf(err, "couldn't render frame template for dom id %s", r.domID)
	}
	r.body = Render(r.domID, rendered.Bytes())
	r.base.Body = r.body
	return r.body, nil
}

// Rerender discards the memoized body and runs a full render pass again.
func (r *TemplateResponse) Rerender() ([]byte, error) {
	r.body = nil
	return r.Materialize()
}

// Base exposes the owned transport response; its body is set by Materialize.
func (r *TemplateResponse) Base() *responding.Response {
	return r.base
}

// WriteTo materializes the body and sends the response over the Echo context.
func (r *TemplateResponse) WriteTo(c echo.Context) error {
	if _, err := r.Materialize(); err != nil {
		return err
	}
	return r.base.WriteTo(c)
}
