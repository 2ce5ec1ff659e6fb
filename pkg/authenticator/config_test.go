package authenticator_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
	"github.com/dmitrymomot/authenticator/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := authenticator.DefaultConfig()
	assert.Equal(t, 6, cfg.Digits())
	assert.Equal(t, 30*time.Second, cfg.TimeStep())
	assert.Equal(t, 3, cfg.WindowSize())
	assert.Equal(t, totp.AlgorithmSHA1, cfg.Algorithm())
	assert.Equal(t, totp.KeyEncodingBase32, cfg.KeyEncoding())
	assert.Equal(t, 10, cfg.KeyLength())
	assert.Equal(t, 5, cfg.ScratchCodes())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := authenticator.NewConfig(
		authenticator.WithDigits(8),
		authenticator.WithTimeStep(time.Minute),
		authenticator.WithWindowSize(5),
		authenticator.WithAlgorithm(totp.AlgorithmSHA512),
		authenticator.WithKeyEncoding(totp.KeyEncodingBase64),
		authenticator.WithKeyLength(20),
		authenticator.WithScratchCodes(10),
	)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Digits())
	assert.Equal(t, time.Minute, cfg.TimeStep())
	assert.Equal(t, 5, cfg.WindowSize())
	assert.Equal(t, totp.AlgorithmSHA512, cfg.Algorithm())
	assert.Equal(t, totp.KeyEncodingBase64, cfg.KeyEncoding())
	assert.Equal(t, 20, cfg.KeyLength())
	assert.Equal(t, 10, cfg.ScratchCodes())
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []authenticator.ConfigOption
		wantErr error
	}{
		{
			name:    "digits too small",
			opts:    []authenticator.ConfigOption{authenticator.WithDigits(5)},
			wantErr: totp.ErrInvalidDigits,
		},
		{
			name:    "digits too large",
			opts:    []authenticator.ConfigOption{authenticator.WithDigits(9)},
			wantErr: totp.ErrInvalidDigits,
		},
		{
			name:    "non-positive time step",
			opts:    []authenticator.ConfigOption{authenticator.WithTimeStep(0)},
			wantErr: totp.ErrInvalidPeriod,
		},
		{
			name:    "window too small",
			opts:    []authenticator.ConfigOption{authenticator.WithWindowSize(0)},
			wantErr: totp.ErrInvalidWindow,
		},
		{
			name:    "window too large",
			opts:    []authenticator.ConfigOption{authenticator.WithWindowSize(18)},
			wantErr: totp.ErrInvalidWindow,
		},
		{
			name:    "unknown algorithm",
			opts:    []authenticator.ConfigOption{authenticator.WithAlgorithm(totp.Algorithm("MD5"))},
			wantErr: totp.ErrUnknownAlgorithm,
		},
		{
			name:    "unknown key encoding",
			opts:    []authenticator.ConfigOption{authenticator.WithKeyEncoding(totp.KeyEncoding("hex"))},
			wantErr: totp.ErrUnknownKeyEncoding,
		},
		{
			name:    "key too short",
			opts:    []authenticator.ConfigOption{authenticator.WithKeyLength(9)},
			wantErr: authenticator.ErrInvalidKeyLength,
		},
		{
			name:    "negative scratch codes",
			opts:    []authenticator.ConfigOption{authenticator.WithScratchCodes(-1)},
			wantErr: authenticator.ErrInvalidScratchCodeCount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := authenticator.NewConfig(tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TOTP_CODE_DIGITS", "8")
	t.Setenv("TOTP_TIME_STEP", "60s")
	t.Setenv("TOTP_WINDOW_SIZE", "4")
	t.Setenv("TOTP_ALGORITHM", "sha256")
	t.Setenv("TOTP_KEY_ENCODING", "base64")
	t.Setenv("TOTP_KEY_LENGTH", "32")
	t.Setenv("TOTP_SCRATCH_CODES", "8")

	cfg, err := authenticator.ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Digits())
	assert.Equal(t, time.Minute, cfg.TimeStep())
	assert.Equal(t, 4, cfg.WindowSize())
	assert.Equal(t, totp.AlgorithmSHA256, cfg.Algorithm())
	assert.Equal(t, totp.KeyEncodingBase64, cfg.KeyEncoding())
	assert.Equal(t, 32, cfg.KeyLength())
	assert.Equal(t, 8, cfg.ScratchCodes())
}

func TestConfigFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("TOTP_ALGORITHM", "MD5")

	_, err := authenticator.ConfigFromEnv()
	assert.ErrorIs(t, err, totp.ErrUnknownAlgorithm)
}
