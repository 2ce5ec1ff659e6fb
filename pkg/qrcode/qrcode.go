package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyURI is returned when the URI to render is empty or whitespace.
	ErrEmptyURI = errors.New("provisioning URI cannot be empty")
	// ErrFailedToRender is returned when the underlying encoder fails.
	ErrFailedToRender = errors.New("failed to render QR code")
)

// defaultSize matches the 200x200 image produced by the legacy chart URL.
const defaultSize = 200

// Render encodes the given provisioning URI into a PNG image of size×size
// pixels. A non-positive size selects the default of 200.
func Render(uri string, size int) ([]byte, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, ErrEmptyURI
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(uri, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToRender, err)
	}
	return png, nil
}

// RenderDataURI encodes the given provisioning URI into a base64 PNG
// data-URI, ready to be embedded into an HTML enrolment page:
//
//	<img src="{{.QRCode}}">
func RenderDataURI(uri string, size int) (string, error) {
	png, err := Render(uri, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
