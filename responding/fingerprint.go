package responding

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// Fingerprint computes a short content hash of the body, in the quoted form
// expected of an ETag value.
func Fingerprint(body []byte) string {
	first, second := murmur3.Sum128(body)
	raw := make([]byte, 0, 16)
	raw = binary.BigEndian.AppendUint64(raw, first)
	raw = binary.BigEndian.AppendUint64(raw, second)
	return `"` + base64.RawURLEncoding.EncodeToString(raw) + `"`
}
