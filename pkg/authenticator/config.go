package authenticator

import (
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically

	"github.com/dmitrymomot/authenticator/pkg/totp"
)

const (
	// DefaultKeyLength is 10 bytes, 80 bits of raw entropy. Shorter keys
	// are rejected at configuration time.
	DefaultKeyLength = 10
	// DefaultScratchCodes is the number of single-use recovery codes
	// generated alongside each secret.
	DefaultScratchCodes = 5
	// DefaultWindowSize checks the previous, current and next time step.
	DefaultWindowSize = 3
)

// Config is the immutable parameter bundle shared by every operation of an
// Authenticator. Build one with NewConfig or ConfigFromEnv; the zero value
// is not usable.
type Config struct {
	digits       int
	timeStep     time.Duration
	windowSize   int
	algorithm    totp.Algorithm
	keyEncoding  totp.KeyEncoding
	keyLength    int
	scratchCodes int
}

// ConfigOption overrides a single default parameter.
type ConfigOption func(*Config)

// WithDigits sets the number of code digits (6, 7 or 8).
func WithDigits(digits int) ConfigOption {
	return func(c *Config) { c.digits = digits }
}

// WithTimeStep sets the TOTP interval.
func WithTimeStep(step time.Duration) ConfigOption {
	return func(c *Config) { c.timeStep = step }
}

// WithWindowSize sets the number of time steps checked during verification.
func WithWindowSize(window int) ConfigOption {
	return func(c *Config) { c.windowSize = window }
}

// WithAlgorithm sets the HMAC hash function.
func WithAlgorithm(alg totp.Algorithm) ConfigOption {
	return func(c *Config) { c.algorithm = alg }
}

// WithKeyEncoding sets the textual representation of secrets.
func WithKeyEncoding(enc totp.KeyEncoding) ConfigOption {
	return func(c *Config) { c.keyEncoding = enc }
}

// WithKeyLength sets the raw secret length in bytes (minimum 10).
func WithKeyLength(length int) ConfigOption {
	return func(c *Config) { c.keyLength = length }
}

// WithScratchCodes sets how many scratch codes are generated per credential.
func WithScratchCodes(count int) ConfigOption {
	return func(c *Config) { c.scratchCodes = count }
}

// DefaultConfig returns the RFC 6238 / Google Authenticator defaults:
// SHA1, 6 digits, 30 second step, window of 3, Base32 keys of 10 bytes and
// 5 scratch codes.
func DefaultConfig() Config {
	return Config{
		digits:       totp.DefaultDigits,
		timeStep:     totp.DefaultPeriod,
		windowSize:   DefaultWindowSize,
		algorithm:    totp.AlgorithmSHA1,
		keyEncoding:  totp.KeyEncodingBase32,
		keyLength:    DefaultKeyLength,
		scratchCodes: DefaultScratchCodes,
	}
}

// NewConfig builds a Config from the defaults and the given overrides.
// Validation happens here, once: instances handed out are always usable.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.digits {
	case 6, 7, 8:
	default:
		return totp.ErrInvalidDigits
	}
	if c.timeStep <= 0 {
		return totp.ErrInvalidPeriod
	}
	if c.windowSize < 1 || c.windowSize > totp.MaxWindow {
		return totp.ErrInvalidWindow
	}
	if _, err := c.algorithm.Hash(); err != nil {
		return err
	}
	if _, err := totp.ParseKeyEncoding(c.keyEncoding.String()); err != nil {
		return err
	}
	if c.keyLength < DefaultKeyLength {
		return ErrInvalidKeyLength
	}
	if c.scratchCodes < 0 {
		return ErrInvalidScratchCodeCount
	}
	return nil
}

// Digits returns the number of code digits.
func (c Config) Digits() int { return c.digits }

// TimeStep returns the TOTP interval.
func (c Config) TimeStep() time.Duration { return c.timeStep }

// WindowSize returns the number of time steps checked during verification.
func (c Config) WindowSize() int { return c.windowSize }

// Algorithm returns the HMAC hash function.
func (c Config) Algorithm() totp.Algorithm { return c.algorithm }

// KeyEncoding returns the textual representation of secrets.
func (c Config) KeyEncoding() totp.KeyEncoding { return c.keyEncoding }

// KeyLength returns the raw secret length in bytes.
func (c Config) KeyLength() int { return c.keyLength }

// ScratchCodes returns how many scratch codes are generated per credential.
func (c Config) ScratchCodes() int { return c.scratchCodes }

// codeModulus is 10^digits, the exclusive upper bound of valid codes.
func (c Config) codeModulus() int {
	m := 1
	for i := 0; i < c.digits; i++ {
		m *= 10
	}
	return m
}

func (c Config) generator() totp.Generator {
	return totp.Generator{
		Algorithm: c.algorithm,
		Digits:    c.digits,
		Period:    c.timeStep,
	}
}

type envConfig struct {
	Digits       int           `env:"TOTP_CODE_DIGITS" envDefault:"6"`
	TimeStep     time.Duration `env:"TOTP_TIME_STEP" envDefault:"30s"`
	WindowSize   int           `env:"TOTP_WINDOW_SIZE" envDefault:"3"`
	Algorithm    string        `env:"TOTP_ALGORITHM" envDefault:"SHA1"`
	KeyEncoding  string        `env:"TOTP_KEY_ENCODING" envDefault:"base32"`
	KeyLength    int           `env:"TOTP_KEY_LENGTH" envDefault:"10"`
	ScratchCodes int           `env:"TOTP_SCRATCH_CODES" envDefault:"5"`
}

// ConfigFromEnv builds a Config from TOTP_* environment variables, falling
// back to the defaults for unset values.
func ConfigFromEnv() (Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return Config{}, err
	}

	alg, err := totp.ParseAlgorithm(raw.Algorithm)
	if err != nil {
		return Config{}, err
	}
	enc, err := totp.ParseKeyEncoding(raw.KeyEncoding)
	if err != nil {
		return Config{}, err
	}

	return NewConfig(
		WithDigits(raw.Digits),
		WithTimeStep(raw.TimeStep),
		WithWindowSize(raw.WindowSize),
		WithAlgorithm(alg),
		WithKeyEncoding(enc),
		WithKeyLength(raw.KeyLength),
		WithScratchCodes(raw.ScratchCodes),
	)
}
