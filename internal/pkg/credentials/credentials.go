package credentials

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrMalformed indicates the encoded credential pair could not be parsed.
// Callers treat this as a client error, never as an authentication failure.
var ErrMalformed = errors.New("malformed encoded credentials")

// DecodeBasic decodes a base64 "username:password" credential pair.
// The pair is split on the first colon only, so the password itself may
// contain colons.
func DecodeBasic(encoded string) (string, string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", ErrMalformed
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) < 2 {
		return "", "", ErrMalformed
	}

	return parts[0], parts[1], nil
}
