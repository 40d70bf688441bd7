package turboframes

import (
	"net/http"
)

// Header is the request header Turbo sets to the DOM id of the frame being
// navigated.
const Header = "Turbo-Frame"

// Requested returns the DOM id of the frame the client is navigating, or the
// empty string for requests outside any frame.
func Requested(h http.Header) string {
	return h.Get(Header)
}
