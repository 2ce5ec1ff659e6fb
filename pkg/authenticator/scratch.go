package authenticator

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/dmitrymomot/authenticator/pkg/totp"
)

// HashScratchCode returns a SHA-256 hash of the scratch code for storage,
// so a leaked store does not reveal usable recovery codes. The code is
// hashed over its canonical 8-digit decimal rendering.
func HashScratchCode(code int) string {
	sum := sha256.Sum256([]byte(totp.FormatCode(code, 8)))
	return hex.EncodeToString(sum[:])
}

// VerifyScratchCode compares a user-supplied scratch code against a stored
// hash in constant time.
func VerifyScratchCode(code int, hashedCode string) bool {
	computed := HashScratchCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}
