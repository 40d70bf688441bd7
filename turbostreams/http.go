package turbostreams

import (
	"net/http"
	"strings"
)

// ContentType is the media type set on Turbo Stream response bodies.
const ContentType = "text/html; turbo-stream; charset=utf-8"

// MIMEType is the media type clients list in the Accept header to request a
// Turbo Stream response.
const MIMEType = "text/html; turbo-stream"

// Accepted checks the [http.Header]'s Accept values to determine whether the
// client requested a Turbo Stream response. Accept members carrying extra
// parameters after the media type still match.
func Accepted(h http.Header) bool {
	for _, a := range strings.Split(h.Get("Accept"), ",") {
		if strings.HasPrefix(strings.TrimSpace(a), MIMEType) {
			return true
		}
	}
	return false
}
