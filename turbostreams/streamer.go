package turbostreams

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/responding"
)

// Streamer is the capability set a handler exposes to have single-instruction
// stream responses composed for it.
type Streamer interface {
	StreamAction() Action
	StreamTarget() string
	StreamContent() []byte
}

// TemplateStreamer is the capability set a handler exposes to have
// template-deferred stream responses composed for it.
type TemplateStreamer interface {
	Streamer
	Request() *http.Request
	TemplateEngine() responding.TemplateRenderer
	TemplateNames() []string
}

// StreamTemplateNamer optionally overrides the template name candidates used
// for stream responses, for handlers whose stream templates differ from their
// generic ones.
type StreamTemplateNamer interface {
	StreamTemplateNames() []string
}

// StreamerConfig is an embeddable [Streamer] implementation for handlers
// whose action and target are fixed rather than computed per request. Embed
// it and override StreamContent to supply content.
type StreamerConfig struct {
	Action Action
	Target string
}

func (c StreamerConfig) StreamAction() Action {
	return c.Action
}

func (c StreamerConfig) StreamTarget() string {
	return c.Target
}

func (c StreamerConfig) StreamContent() []byte {
	return nil
}

// RenderResponse composes an eager stream response from the handler's
// declared capabilities. An unset action or target is a programmer error and
// fails before any markup is produced.
func RenderResponse(s Streamer) (*Response, error) {
	action := s.StreamAction()
	if action == "" {
		return nil, errors.New("stream action must be specified")
	}
	target := s.StreamTarget()
	if target == "" {
		return nil, errors.New("stream target must be specified")
	}
	return NewResponse(action, target, s.StreamContent())
}

// RenderTemplateResponse composes a template-deferred stream response from
// the handler's declared capabilities. An unset or unknown action or an unset
// target is reported as an [echo.HTTPError], so the host framework treats it
// as a server misconfiguration.
func RenderTemplateResponse(
	s TemplateStreamer, data responding.Data,
) (*TemplateResponse, error) {
	action := s.StreamAction()
	if action == "" {
		return nil, echo.NewHTTPError(
			http.StatusInternalServerError, "stream action not configured",
		)
	}
	if !action.Valid() {
		return nil, echo.NewHTTPError(
			http.StatusInternalServerError, "unknown stream action "+action.String(),
		)
	}
	target := s.StreamTarget()
	if target == "" {
		return nil, echo.NewHTTPError(
			http.StatusInternalServerError, "stream target not configured",
		)
	}

	names := s.TemplateNames()
	if namer, ok := s.(StreamTemplateNamer); ok {
		names = namer.StreamTemplateNames()
	}
	return NewTemplateResponse(s.TemplateEngine(), s.Request(), names, data, action, target), nil
}
