// Package turboframes composes Turbo Frame responses: bodies wrapped in a
// <turbo-frame> element addressed by DOM id, emitted either eagerly or lazily
// after a template engine renders the content.
package turboframes

import (
	"bytes"
	"html/template"
)

// Render wraps content in a <turbo-frame> element for the DOM id. The id is
// escaped for attribute safety; the content is inserted without any escaping,
// so untrusted content must be escaped by the caller.
func Render(domID string, content []byte) []byte {
	var b bytes.Buffer
	b.WriteString(`<turbo-frame id="`)
	b.WriteString(template.HTMLEscapeString(domID))
	b.WriteString(`">`)
	b.Write(content)
	b.WriteString(`</turbo-frame>`)
	return b.Bytes()
}
