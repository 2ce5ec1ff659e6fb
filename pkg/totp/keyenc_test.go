package totp_test

import (
	"testing"

	"github.com/dmitrymomot/authenticator/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEncoding_Base32(t *testing.T) {
	t.Parallel()

	raw := []byte("12345678901234567890")
	encoded := totp.KeyEncodingBase32.Encode(raw)
	assert.Equal(t, "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", encoded)

	decoded, err := totp.KeyEncodingBase32.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestKeyEncoding_Base32_Normalisation(t *testing.T) {
	t.Parallel()

	raw := []byte("1234567890")
	encoded := totp.KeyEncodingBase32.Encode(raw)

	for _, variant := range []string{
		"  " + encoded + "  ",
		encoded + "====",
		"gezdgnbvgy3tqojq",
	} {
		decoded, err := totp.KeyEncodingBase32.Decode(variant)
		require.NoError(t, err, "variant %q", variant)
		assert.Equal(t, raw, decoded)
	}
}

func TestKeyEncoding_Base64(t *testing.T) {
	t.Parallel()

	raw := []byte{0x00, 0x01, 0xfe, 0xff, 0x42}
	encoded := totp.KeyEncodingBase64.Encode(raw)

	decoded, err := totp.KeyEncodingBase64.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestKeyEncoding_Decode_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := totp.KeyEncodingBase32.Decode("not-a-secret!@#$")
	assert.ErrorIs(t, err, totp.ErrInvalidSecret)

	_, err = totp.KeyEncodingBase64.Decode("%%%")
	assert.ErrorIs(t, err, totp.ErrInvalidSecret)
}

func TestParseKeyEncoding(t *testing.T) {
	t.Parallel()

	enc, err := totp.ParseKeyEncoding("BASE32")
	require.NoError(t, err)
	assert.Equal(t, totp.KeyEncodingBase32, enc)

	enc, err = totp.ParseKeyEncoding("base64")
	require.NoError(t, err)
	assert.Equal(t, totp.KeyEncodingBase64, enc)

	_, err = totp.ParseKeyEncoding("hex")
	assert.ErrorIs(t, err, totp.ErrUnknownKeyEncoding)
}
