package totp_test

import (
	"testing"

	"github.com/dmitrymomot/authenticator/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHOTP_RFC4226Vectors(t *testing.T) {
	t.Parallel()

	// Appendix D of RFC 4226: secret "12345678901234567890", counters 0-9.
	key := []byte("12345678901234567890")
	expected := []int{755224, 287082, 359152, 969429, 338314, 254676, 287922, 162583, 399871, 520489}

	for counter, want := range expected {
		code, err := totp.HOTP(totp.AlgorithmSHA1, key, int64(counter), 6)
		require.NoError(t, err)
		assert.Equal(t, want, code, "counter %d", counter)
	}
}

func TestHOTP_InvalidDigits(t *testing.T) {
	t.Parallel()

	key := []byte("12345678901234567890")
	for _, digits := range []int{0, 1, 5, 9, 10} {
		_, err := totp.HOTP(totp.AlgorithmSHA1, key, 0, digits)
		assert.ErrorIs(t, err, totp.ErrInvalidDigits, "digits %d", digits)
	}
}

func TestHOTP_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := totp.HOTP(totp.Algorithm("MD5"), []byte("key"), 0, 6)
	assert.ErrorIs(t, err, totp.ErrUnknownAlgorithm)
}
