// Package otpuri builds otpauth:// provisioning URIs understood by Google
// Authenticator and compatible applications, following the Key Uri Format:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// The label is the URI path component and is percent-encoded with path
// rules (spaces become %20); the colon separating issuer and account name is
// kept literal. Query parameter values use standard query encoding (spaces
// become +) and are emitted in a fixed order — secret, issuer, algorithm,
// digits, period — so the same input always yields the same URI byte for
// byte.
//
// ChartURL wraps a provisioning URI into the legacy Google Charts QR image
// URL. That endpoint has been deprecated by its provider; the format string
// is exported so embedders can point the wrapper at their own QR service,
// and package qrcode renders the image locally without any remote call.
package otpuri
