package totp

import "errors"

var (
	ErrUnknownAlgorithm   = errors.New("unknown HMAC hash algorithm")
	ErrUnknownKeyEncoding = errors.New("unknown key encoding")
	ErrInvalidSecret      = errors.New("secret is not decodable under the configured key encoding")
	ErrInvalidDigits      = errors.New("code digits must be 6, 7 or 8")
	ErrInvalidPeriod      = errors.New("time step must be positive")
	ErrInvalidWindow      = errors.New("validation window must be between 1 and 17")
)
