package totp_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/totp"

	"github.com/pquerna/otp"
	pqtotp "github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Codes produced by this package must be accepted by independent TOTP
// implementations and vice versa, otherwise enrolled authenticator apps
// would drift out of sync with the server.
func TestGenerator_InteropWithPquernaOTP(t *testing.T) {
	t.Parallel()

	secret := totp.KeyEncodingBase32.Encode(rfcKeySHA1)
	key, err := totp.KeyEncodingBase32.Decode(secret)
	require.NoError(t, err)

	times := []time.Time{
		time.Unix(59, 0),
		time.Unix(1111111109, 0),
		time.Unix(1234567890, 0),
		time.Unix(2000000000, 0),
	}

	gen := totp.Generator{Digits: 8}

	for _, at := range times {
		ours, err := gen.CodeAt(key, at)
		require.NoError(t, err)

		theirs, err := pqtotp.GenerateCodeCustom(secret, at, pqtotp.ValidateOpts{
			Period:    30,
			Digits:    otp.DigitsEight,
			Algorithm: otp.AlgorithmSHA1,
		})
		require.NoError(t, err)

		assert.Equal(t, theirs, totp.FormatCode(ours, 8), "t=%d", at.Unix())

		ok, err := pqtotp.ValidateCustom(totp.FormatCode(ours, 8), secret, at, pqtotp.ValidateOpts{
			Period:    30,
			Digits:    otp.DigitsEight,
			Algorithm: otp.AlgorithmSHA1,
		})
		require.NoError(t, err)
		assert.True(t, ok, "t=%d", at.Unix())

		accepted, err := gen.Validate(key, ours, at, 3)
		require.NoError(t, err)
		assert.True(t, accepted, "t=%d", at.Unix())
	}
}
