package turboframes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/responding"
)

// Framer is the capability set a handler exposes to have frame responses
// composed for it.
type Framer interface {
	FrameID() string
	FrameContent() []byte
}

// TemplateFramer is the capability set a handler exposes to have
// template-deferred frame responses composed for it.
type TemplateFramer interface {
	Framer
	Request() *http.Request
	TemplateEngine() responding.TemplateRenderer
	TemplateNames() []string
}

// FrameTemplateNamer optionally overrides the template name candidates used
// for frame responses.
type FrameTemplateNamer interface {
	FrameTemplateNames() []string
}

// FramerConfig is an embeddable [Framer] implementation for handlers whose
// DOM id is fixed rather than computed per request. Embed it and override
// FrameContent to supply content.
type FramerConfig struct {
	DomID string
}

func (c FramerConfig) FrameID() string {
	return c.DomID
}

func (c FramerConfig) FrameContent() []byte {
	return nil
}

// RenderResponse composes an eager frame response from the handler's declared
// capabilities. An unset DOM id is a programmer error and fails before any
// markup is produced.
func RenderResponse(f Framer) (*Response, error) {
	domID := f.FrameID()
	if domID == "" {
		return nil, errors.New("frame dom id must be specified")
	}
	return NewResponse(domID, f.FrameContent()), nil
}

// RenderTemplateResponse composes a template-deferred frame response from the
// handler's declared capabilities. An unset DOM id is reported as an
// [echo.HTTPError], so the host framework treats it as a server
// misconfiguration.
func RenderTemplateResponse(
	f TemplateFramer, data responding.Data,
) (*TemplateResponse, error) {
	domID := f.FrameID()
	if domID == "" {
		return nil, echo.NewHTTPError(
			http.StatusInternalServerError, "frame dom id not configured",
		)
	}

	names := f.TemplateNames()
	if namer, ok := f.(FrameTemplateNamer); ok {
		names = namer.FrameTemplateNames()
	}
	return NewTemplateResponse(f.TemplateEngine(), f.Request(), names, data, domID), nil
}
