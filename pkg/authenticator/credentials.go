package authenticator

import (
	"encoding/binary"
	"errors"
	"time"
)

const (
	scratchCodeBytes   = 4
	scratchCodeModulus = 100_000_000
	scratchCodeMin     = 10_000_000
)

// Credential is the immutable result of one enrolment: the encoded secret
// key, the validation code at the UNIX epoch, and the single-use scratch
// codes. Instances are only constructed by CreateCredentials.
type Credential struct {
	key            string
	validationCode int
	scratchCodes   []int
	config         Config
}

// Key returns the secret key, encoded per the credential's Config.
func (c Credential) Key() string { return c.key }

// ValidationCode returns the TOTP code at time zero (the UNIX epoch). It is
// kept for diagnostics and client-side sanity checks.
func (c Credential) ValidationCode() int { return c.validationCode }

// ScratchCodes returns a copy of the scratch codes, each exactly 8 decimal
// digits.
func (c Credential) ScratchCodes() []int {
	codes := make([]int, len(c.scratchCodes))
	copy(codes, c.scratchCodes)
	return codes
}

// Config returns the configuration the credential was created under.
func (c Credential) Config() Config { return c.config }

// CreateCredentials mints a fresh credential. The secret and all scratch
// codes come out of a single random draw of keyLength + 4·scratchCodes
// bytes; only rejected scratch candidates cost an extra 4-byte draw.
func (a *Authenticator) CreateCredentials() (Credential, error) {
	cfg := a.config

	buf := make([]byte, cfg.keyLength+cfg.scratchCodes*scratchCodeBytes)
	if _, err := a.random.Read(buf); err != nil {
		return Credential{}, errors.Join(ErrFailedToGenerateCredentials, err)
	}

	rawKey := buf[:cfg.keyLength]

	codes := make([]int, 0, cfg.scratchCodes)
	for i := 0; i < cfg.scratchCodes; i++ {
		chunk := buf[cfg.keyLength+i*scratchCodeBytes:][:scratchCodeBytes]
		code, ok := scratchCodeFromBytes(chunk)
		for !ok {
			if _, err := a.random.Read(chunk); err != nil {
				return Credential{}, errors.Join(ErrFailedToGenerateCredentials, err)
			}
			code, ok = scratchCodeFromBytes(chunk)
		}
		codes = append(codes, code)
	}

	validationCode, err := cfg.generator().CodeAt(rawKey, time.UnixMilli(0))
	if err != nil {
		return Credential{}, errors.Join(ErrFailedToGenerateCredentials, err)
	}

	return Credential{
		key:            cfg.keyEncoding.Encode(rawKey),
		validationCode: validationCode,
		scratchCodes:   codes,
		config:         cfg,
	}, nil
}

// scratchCodeFromBytes folds a 4-byte chunk into an 8-digit code. Candidates
// with fewer than 8 digits are rejected so codes never carry a leading zero;
// the caller redraws until a candidate is accepted.
func scratchCodeFromBytes(chunk []byte) (int, bool) {
	code := int(binary.BigEndian.Uint32(chunk)&0x7fffffff) % scratchCodeModulus
	return code, code >= scratchCodeMin
}
