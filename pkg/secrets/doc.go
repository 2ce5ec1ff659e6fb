// Package secrets encrypts TOTP secret keys for persistence with
// AES-256-GCM, so a leaked credential store does not immediately leak every
// user's shared secret.
//
// The ciphertext layout is nonce || sealed data, base64-encoded. The
// encryption key is a 32-byte value, usually provided base64-encoded through
// the TOTP_ENCRYPTION_KEY environment variable and loaded once per process
// with LoadEncryptionKey. GenerateEncodedEncryptionKey produces a fresh key
// in that format for bootstrap tooling.
package secrets
