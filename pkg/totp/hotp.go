package totp

import (
	"crypto/hmac"
	"encoding/binary"
)

// codeModulus returns 10^digits for the supported digit counts.
func codeModulus(digits int) (int, bool) {
	switch digits {
	case 6:
		return 1_000_000, true
	case 7:
		return 10_000_000, true
	case 8:
		return 100_000_000, true
	}
	return 0, false
}

// HOTP computes the RFC 4226 one-time password for the given counter value.
// The counter is encoded big-endian into an 8-byte message, MACed with the
// key, and dynamically truncated to a 31-bit integer which is reduced modulo
// 10^digits.
func HOTP(alg Algorithm, key []byte, counter int64, digits int) (int, error) {
	modulus, ok := codeModulus(digits)
	if !ok {
		return 0, ErrInvalidDigits
	}

	newHash, err := alg.Hash()
	if err != nil {
		return 0, err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(newHash, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): the low nibble of the last byte
	// selects a 4-byte slice whose top bit is cleared.
	offset := sum[len(sum)-1] & 0x0f
	bin := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return int(bin % uint32(modulus)), nil
}
