// Package qrcode renders provisioning URIs as QR code images locally, as an
// alternative to the deprecated remote chart endpoint wrapped by package
// otpuri.
//
// Render returns PNG bytes, RenderDataURI a base64 data-URI string suitable
// for an <img> tag in an enrolment page. Both delegate the actual encoding
// to github.com/skip2/go-qrcode with medium error correction, the level used
// by the historical chart endpoint.
package qrcode
