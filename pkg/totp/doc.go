// Package totp implements the HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// password algorithms in a form that is bit-compatible with Google
// Authenticator, Authy and other widely deployed authenticator applications.
//
// The package deliberately stays below policy decisions: it computes and
// verifies integer codes from raw key bytes, a point in time and a handful of
// parameters. Secret provisioning, credential storage and URI generation live
// in the sibling packages authenticator and otpuri.
//
// # Architecture
//
// The package is made of three small layers.
//
//   • hotp.go  – the RFC 4226 construction: an HMAC over the big-endian
//     counter followed by dynamic truncation to a short integer code.
//
//   • totp.go  – the RFC 6238 specialisation: the counter is derived from
//     wall-clock time, and verification checks a configurable window of
//     adjacent counters to tolerate clock skew between server and device.
//
//   • algorithm.go / keyenc.go – the enumerated HMAC hash functions
//     (SHA-1, SHA-256, SHA-512) and the supported secret encodings
//     (Base32 without padding, standard Base64).
//
// # Usage
//
// Generating and verifying a code:
//
//	gen := totp.Generator{}                   // SHA1, 6 digits, 30s period
//	code, err := gen.CodeAt(key, time.Now())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(totp.FormatCode(code, 6))
//
//	ok, err := gen.Validate(key, code, time.Now(), 3)
//
// The window argument of Validate is a count of time steps, not a radius: a
// window of 3 checks the previous, the current and the next step; a window of
// 4 additionally checks the second step in the future.
//
// # Error Handling
//
// Failed verification is not an error: Validate returns false with a nil
// error when no counter in the window produces the supplied code, or when the
// code is structurally impossible (zero, negative, or too many digits).
// Errors are reserved for misconfiguration and are exposed as package-level
// sentinels such as ErrUnknownAlgorithm and ErrInvalidWindow, suitable for
// errors.Is checks.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
