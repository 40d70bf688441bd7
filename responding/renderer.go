package responding

import (
	"io"
	"net/http"
)

// TemplateRenderer is the template engine collaborator consumed by
// template-deferred responses. Render resolves the first existing name among
// the ordered candidates and writes the rendered body to w. The request is
// passed through for engines whose templates depend on request state.
type TemplateRenderer interface {
	Render(w io.Writer, names []string, data Data, r *http.Request) error
}
