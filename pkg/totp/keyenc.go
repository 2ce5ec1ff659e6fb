package totp

import (
	"encoding/base32"
	"encoding/base64"
	"errors"
	"strings"
)

// KeyEncoding selects the textual representation of raw secret bytes.
type KeyEncoding string

const (
	// KeyEncodingBase32 is RFC 4648 Base32 without padding, uppercase. This
	// is the representation understood by authenticator applications.
	KeyEncodingBase32 KeyEncoding = "base32"
	// KeyEncodingBase64 is standard Base64 with padding.
	KeyEncodingBase64 KeyEncoding = "base64"
)

var base32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ParseKeyEncoding converts a case-insensitive encoding name into a
// KeyEncoding.
func ParseKeyEncoding(s string) (KeyEncoding, error) {
	switch KeyEncoding(strings.ToLower(strings.TrimSpace(s))) {
	case KeyEncodingBase32:
		return KeyEncodingBase32, nil
	case KeyEncodingBase64:
		return KeyEncodingBase64, nil
	}
	return "", ErrUnknownKeyEncoding
}

// Encode renders raw secret bytes in this encoding.
func (e KeyEncoding) Encode(raw []byte) string {
	switch e {
	case KeyEncodingBase64:
		return base64.StdEncoding.EncodeToString(raw)
	default:
		return base32NoPadding.EncodeToString(raw)
	}
}

// Decode recovers raw secret bytes from their textual representation.
// Base32 input is normalised first: surrounding whitespace and trailing
// padding are dropped and lowercase letters are accepted, since secrets are
// frequently re-typed by hand from an authenticator app.
func (e KeyEncoding) Decode(secret string) ([]byte, error) {
	switch e {
	case KeyEncodingBase64:
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(secret))
		if err != nil {
			return nil, errors.Join(ErrInvalidSecret, err)
		}
		return raw, nil
	case KeyEncodingBase32, "":
		normalized := strings.ToUpper(strings.TrimSpace(secret))
		normalized = strings.TrimRight(normalized, "=")
		raw, err := base32NoPadding.DecodeString(normalized)
		if err != nil {
			return nil, errors.Join(ErrInvalidSecret, err)
		}
		return raw, nil
	}
	return nil, ErrUnknownKeyEncoding
}

func (e KeyEncoding) String() string {
	return string(e)
}
