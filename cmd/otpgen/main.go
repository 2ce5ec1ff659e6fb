// Command otpgen mints a fresh TOTP credential and prints everything an
// operator needs to enrol a user: the secret key, the validation code, the
// scratch codes, the provisioning URI and, with -qr, an inline QR code.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dmitrymomot/authenticator/pkg/authenticator"
	"github.com/dmitrymomot/authenticator/pkg/otpuri"
	"github.com/dmitrymomot/authenticator/pkg/qrcode"
	"github.com/dmitrymomot/authenticator/pkg/totp"
)

func main() {
	issuer := flag.String("issuer", "Example", "issuer shown in the authenticator app")
	account := flag.String("account", "user@example.com", "account name shown in the authenticator app")
	withQR := flag.Bool("qr", false, "also print the QR code as a PNG data URI")
	flag.Parse()

	cfg, err := authenticator.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	auth, err := authenticator.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise authenticator: %v", err)
	}

	cred, err := auth.CreateCredentials()
	if err != nil {
		log.Fatalf("Failed to create credentials: %v", err)
	}

	uri, err := otpuri.Build(otpuri.Params{
		Secret:      cred.Key(),
		AccountName: *account,
		Issuer:      *issuer,
		Algorithm:   cfg.Algorithm(),
		Digits:      cfg.Digits(),
		Period:      cfg.TimeStep(),
	})
	if err != nil {
		log.Fatalf("Failed to build provisioning URI: %v", err)
	}

	fmt.Printf("Secret key:       %s\n", cred.Key())
	fmt.Printf("Validation code:  %s\n", totp.FormatCode(cred.ValidationCode(), cfg.Digits()))
	fmt.Println("Scratch codes:")
	for _, code := range cred.ScratchCodes() {
		fmt.Printf("  %d\n", code)
	}
	fmt.Printf("Provisioning URI: %s\n", uri)

	if *withQR {
		dataURI, err := qrcode.RenderDataURI(uri, 0)
		if err != nil {
			log.Fatalf("Failed to render QR code: %v", err)
		}
		fmt.Printf("QR code:          %s\n", dataURI)
	}
}
