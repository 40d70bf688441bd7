package turbostreams

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
)

// Stream is a single DOM mutation instruction: an action applied to the
// element(s) identified by the target, with the content inserted verbatim.
type Stream struct {
	Action  Action
	Target  string
	Content []byte
}

// Render wraps content in a <turbo-stream> element for the action and target.
// The target is escaped for attribute safety; the content is inserted without
// any escaping, so untrusted content must be escaped by the caller. Unknown
// actions are rejected before any markup is produced.
func Render(action Action, target string, content []byte) ([]byte, error) {
	if !action.Valid() {
		return nil, errors.Errorf("unknown turbo stream action %s", action)
	}

	var b bytes.Buffer
	b.WriteString(`<turbo-stream action="`)
	b.WriteString(string(action))
	b.WriteString(`" target="`)
	b.WriteString(template.HTMLEscapeString(target))
	b.WriteString(`">`)
	b.Write(content)
	b.WriteString(`</turbo-stream>`)
	return b.Bytes(), nil
}

// RenderAll concatenates the wrapper markup of the streams, one wrapper
// element per instruction.
func RenderAll(streams ...Stream) ([]byte, error) {
	var b bytes.Buffer
	for _, stream := range streams {
		rendered, err := Render(stream.Action, stream.Target, stream.Content)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't render stream targeting %s", stream.Target)
		}
		b.Write(rendered)
	}
	return b.Bytes(), nil
}
