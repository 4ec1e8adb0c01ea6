package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates a cursor string that could not be decoded.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor is a pagination position: the resource type it belongs to plus the
// last identifier the client has seen. Clients treat the encoded form as
// opaque.
type Cursor struct {
	Type  string
	Value string
}

// Encode renders the cursor as URL-safe Base64 over "type:value".
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Type + ":" + c.Value))
}

// DecodeCursor parses an encoded cursor. An empty string decodes to the zero
// cursor, which addresses the first page.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	// The value may itself contain colons, so split only on the first.
	parts := strings.SplitN(string(b), ":", 2)
	if len(parts) != 2 {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: parts[0], Value: parts[1]}, nil
}
