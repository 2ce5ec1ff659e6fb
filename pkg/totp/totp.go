package totp

import (
	"fmt"
	"time"
)

const (
	DefaultDigits = 6                // Standard 6-digit codes
	DefaultPeriod = 30 * time.Second // RFC 6238 recommended time step

	// MaxWindow bounds the number of time steps a single verification may
	// check. The limit comes from the Google Authenticator PAM module.
	MaxWindow = 17
)

// Generator derives and verifies time-based codes from raw key bytes.
// The zero value uses HMAC-SHA1, 6 digits and a 30 second period. Generator
// is a plain value and safe for concurrent use.
type Generator struct {
	Algorithm Algorithm     // HMAC hash function (optional, defaults to SHA1)
	Digits    int           // Number of code digits (optional, defaults to 6)
	Period    time.Duration // Time step (optional, defaults to 30s)
}

// withDefaults returns a copy with standard values applied to zero fields.
func (g Generator) withDefaults() Generator {
	if g.Algorithm == "" {
		g.Algorithm = AlgorithmSHA1
	}
	if g.Digits == 0 {
		g.Digits = DefaultDigits
	}
	if g.Period == 0 {
		g.Period = DefaultPeriod
	}
	return g
}

// Counter returns the time-step counter for the given instant, i.e. the
// number of whole periods elapsed since the UNIX epoch.
func (g Generator) Counter(t time.Time) int64 {
	g = g.withDefaults()
	return t.UnixMilli() / g.Period.Milliseconds()
}

// Code computes the code for the current time.
func (g Generator) Code(key []byte) (int, error) {
	return g.CodeAt(key, time.Now())
}

// CodeAt computes the code for the time step containing t.
func (g Generator) CodeAt(key []byte, t time.Time) (int, error) {
	g = g.withDefaults()
	if g.Period < 0 {
		return 0, ErrInvalidPeriod
	}
	return HOTP(g.Algorithm, key, g.Counter(t), g.Digits)
}

// Validate reports whether code matches any time step within the window
// around t. The window is a count of steps, not a radius: the checked
// counter offsets are the interval [-⌊(window-1)/2⌋, ⌊window/2⌋], so a
// window of 3 checks {-1, 0, +1} and a window of 4 checks {-1, 0, +1, +2}.
//
// Structurally impossible codes (non-positive, or at least as large as
// 10^digits) are rejected without computing a single MAC. A window outside
// [1, MaxWindow] is a configuration mistake and returns ErrInvalidWindow.
func (g Generator) Validate(key []byte, code int, t time.Time, window int) (bool, error) {
	g = g.withDefaults()

	if g.Period < 0 {
		return false, ErrInvalidPeriod
	}
	modulus, ok := codeModulus(g.Digits)
	if !ok {
		return false, ErrInvalidDigits
	}
	if code <= 0 || code >= modulus {
		return false, nil
	}
	if window < 1 || window > MaxWindow {
		return false, ErrInvalidWindow
	}

	counter := g.Counter(t)
	for i := -((window - 1) / 2); i <= window/2; i++ {
		candidate, err := HOTP(g.Algorithm, key, counter+int64(i), g.Digits)
		if err != nil {
			return false, err
		}
		if candidate == code {
			return true, nil
		}
	}

	return false, nil
}

// FormatCode renders a code as a zero-padded decimal string of the given
// width, the way authenticator applications display it.
func FormatCode(code, digits int) string {
	return fmt.Sprintf("%0*d", digits, code)
}
