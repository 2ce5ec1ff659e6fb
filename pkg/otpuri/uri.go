package otpuri

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/authenticator/pkg/totp"
)

var (
	ErrMissingSecret        = errors.New("missing secret")
	ErrMissingAccountName   = errors.New("account name must not be empty")
	ErrColonInIssuer        = errors.New("issuer cannot contain the ':' character")
	ErrColonInAccountName   = errors.New("account name cannot contain the ':' character")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm for provisioning URI")
)

// Params describes one enrolment to encode into a provisioning URI.
type Params struct {
	Secret      string         // Encoded secret key (required)
	AccountName string         // User identifier such as an email address (required)
	Issuer      string         // Service name shown in authenticator apps (optional)
	Algorithm   totp.Algorithm // HMAC algorithm (optional, defaults to SHA1)
	Digits      int            // Number of code digits (optional, defaults to 6)
	Period      time.Duration  // Code validity period (optional, defaults to 30s)
}

func (p Params) withDefaults() Params {
	if p.Algorithm == "" {
		p.Algorithm = totp.AlgorithmSHA1
	}
	if p.Digits == 0 {
		p.Digits = totp.DefaultDigits
	}
	if p.Period == 0 {
		p.Period = totp.DefaultPeriod
	}
	return p
}

// Validate ensures the parameters can be encoded into a well-formed label.
func (p Params) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if strings.TrimSpace(p.AccountName) == "" {
		return ErrMissingAccountName
	}
	if strings.Contains(p.AccountName, ":") {
		return ErrColonInAccountName
	}
	if strings.Contains(p.Issuer, ":") {
		return ErrColonInIssuer
	}
	return nil
}

// Build renders the otpauth://totp/... URI for the given parameters.
//
// The query parameters appear in the fixed order secret, issuer (when
// present), algorithm, digits, period. Identical input produces an
// identical URI string.
func Build(p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	p = p.withDefaults()

	switch p.Algorithm {
	case totp.AlgorithmSHA1, totp.AlgorithmSHA256, totp.AlgorithmSHA512:
	default:
		return "", ErrUnsupportedAlgorithm
	}

	var uri strings.Builder
	uri.WriteString("otpauth://totp/")
	if p.Issuer != "" {
		uri.WriteString(url.PathEscape(p.Issuer))
		uri.WriteString(":")
	}
	uri.WriteString(url.PathEscape(p.AccountName))

	uri.WriteString("?secret=")
	uri.WriteString(url.QueryEscape(p.Secret))
	if p.Issuer != "" {
		uri.WriteString("&issuer=")
		uri.WriteString(url.QueryEscape(p.Issuer))
	}
	uri.WriteString("&algorithm=")
	uri.WriteString(p.Algorithm.String())
	uri.WriteString("&digits=")
	uri.WriteString(strconv.Itoa(p.Digits))
	uri.WriteString("&period=")
	uri.WriteString(strconv.Itoa(int(p.Period / time.Second)))

	return uri.String(), nil
}
