// Package flash provides session-backed one-shot messages delivered to the
// client as Turbo Stream append instructions.
package flash

import (
	"bytes"
	"html/template"

	"github.com/sargassum-world/turboresponse/turbostreams"
)

// Standard message levels.
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Message is a one-shot notification stored in the session until drained.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// HTML renders the message as a notification fragment, with the level as a
// CSS class suffix. Both fields are escaped.
func (m Message) HTML() []byte {
	var b bytes.Buffer
	b.WriteString(`<div class="flash flash-`)
	b.WriteString(template.HTMLEscapeString(m.Level))
	b.WriteString(`">`)
	b.WriteString(template.HTMLEscapeString(m.Text))
	b.WriteString(`</div>`)
	return b.Bytes()
}

// Streams converts drained messages into append instructions on the target
// element.
func Streams(target string, messages []Message) []turbostreams.Stream {
	streams := make([]turbostreams.Stream, 0, len(messages))
	for _, message := range messages {
		streams = append(streams, turbostreams.Stream{
			Action:  turbostreams.ActionAppend,
			Target:  target,
			Content: message.HTML(),
		})
	}
	return streams
}

// Response composes an eager Turbo Stream response appending the messages to
// the target element.
func Response(target string, messages []Message) (*turbostreams.Response, error) {
	return turbostreams.NewMultiResponse(Streams(target, messages)...)
}
