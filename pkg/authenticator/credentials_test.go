package authenticator_test

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
	"github.com/dmitrymomot/authenticator/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader serves pre-arranged buffers, one per Read call, so tests
// control every byte of entropy the generator consumes.
type scriptedReader struct {
	script [][]byte
	reads  int
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if len(r.script) == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	next := r.script[0]
	if len(next) != len(p) {
		return 0, fmt.Errorf("scripted read size mismatch: want %d bytes, have %d", len(p), len(next))
	}
	r.script = r.script[1:]
	r.reads++
	copy(p, next)
	return len(p), nil
}

// onesReader yields 0xFF forever. Every scratch candidate drawn from it is
// 2147483647 % 1e8 = 47483647, which is always accepted.
type onesReader struct {
	bytesRead int
	reads     int
}

func (r *onesReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0xff
	}
	r.bytesRead += len(p)
	r.reads++
	return len(p), nil
}

func TestCreateCredentials_Shape(t *testing.T) {
	t.Parallel()

	auth, err := authenticator.New(authenticator.DefaultConfig())
	require.NoError(t, err)

	cred, err := auth.CreateCredentials()
	require.NoError(t, err)

	raw, err := totp.KeyEncodingBase32.Decode(cred.Key())
	require.NoError(t, err)
	assert.Len(t, raw, authenticator.DefaultKeyLength)

	codes := cred.ScratchCodes()
	assert.Len(t, codes, authenticator.DefaultScratchCodes)
	for _, code := range codes {
		assert.GreaterOrEqual(t, code, 10_000_000, "scratch code with leading zero")
		assert.Less(t, code, 100_000_000)
	}

	assert.GreaterOrEqual(t, cred.ValidationCode(), 0)
	assert.Less(t, cred.ValidationCode(), 1_000_000)
}

func TestCreateCredentials_ValidationCodeAtEpoch(t *testing.T) {
	t.Parallel()

	auth, err := authenticator.New(authenticator.DefaultConfig())
	require.NoError(t, err)

	cred, err := auth.CreateCredentials()
	require.NoError(t, err)

	raw, err := totp.KeyEncodingBase32.Decode(cred.Key())
	require.NoError(t, err)

	epochCode, err := totp.Generator{}.CodeAt(raw, time.UnixMilli(0))
	require.NoError(t, err)
	assert.Equal(t, epochCode, cred.ValidationCode())
}

func TestCreateCredentials_SingleEntropyDraw(t *testing.T) {
	t.Parallel()

	random := &onesReader{}
	auth, err := authenticator.New(authenticator.DefaultConfig(), authenticator.WithRandom(random))
	require.NoError(t, err)

	const rounds = 7
	for i := 0; i < rounds; i++ {
		_, err := auth.CreateCredentials()
		require.NoError(t, err)
	}

	// One draw per credential when no scratch candidate is rejected.
	perCredential := authenticator.DefaultKeyLength + authenticator.DefaultScratchCodes*4
	assert.Equal(t, rounds*perCredential, random.bytesRead)
	assert.Equal(t, rounds, random.reads)
}

func TestCreateCredentials_RejectedScratchChunkIsRedrawn(t *testing.T) {
	t.Parallel()

	cfg, err := authenticator.NewConfig(authenticator.WithScratchCodes(2))
	require.NoError(t, err)

	// First scratch chunk decodes to exactly 10,000,000 (accepted at the
	// boundary); the second to 9,999,999 (rejected, seven digits) and is
	// replaced by a fresh 4-byte draw.
	initial := make([]byte, cfg.KeyLength())
	initial = append(initial, 0x00, 0x98, 0x96, 0x80)
	initial = append(initial, 0x00, 0x98, 0x96, 0x7f)

	random := &scriptedReader{script: [][]byte{
		initial,
		{0xff, 0xff, 0xff, 0xff},
	}}

	auth, err := authenticator.New(cfg, authenticator.WithRandom(random))
	require.NoError(t, err)

	cred, err := auth.CreateCredentials()
	require.NoError(t, err)

	assert.Equal(t, []int{10_000_000, 47_483_647}, cred.ScratchCodes())
	assert.Equal(t, 2, random.reads)
}

func TestCreateCredentials_Base64Keys(t *testing.T) {
	t.Parallel()

	cfg, err := authenticator.NewConfig(
		authenticator.WithKeyEncoding(totp.KeyEncodingBase64),
		authenticator.WithKeyLength(20),
	)
	require.NoError(t, err)

	auth, err := authenticator.New(cfg)
	require.NoError(t, err)

	cred, err := auth.CreateCredentials()
	require.NoError(t, err)

	raw, err := totp.KeyEncodingBase64.Decode(cred.Key())
	require.NoError(t, err)
	assert.Len(t, raw, 20)
}

func TestCredential_ScratchCodesCopy(t *testing.T) {
	t.Parallel()

	auth, err := authenticator.New(authenticator.DefaultConfig())
	require.NoError(t, err)

	cred, err := auth.CreateCredentials()
	require.NoError(t, err)

	codes := cred.ScratchCodes()
	codes[0] = 0
	assert.NotEqual(t, 0, cred.ScratchCodes()[0], "mutating the returned slice leaked into the credential")
}
