package otpuri

import (
	"fmt"
	"net/url"
)

// DefaultChartFormat is the historical Google Charts QR endpoint. The single
// %s verb receives the URL-encoded provisioning URI. The endpoint has been
// deprecated by Google since 2019 and is kept for compatibility with
// existing integrations; prefer rendering locally with package qrcode.
const DefaultChartFormat = "https://chart.googleapis.com/chart?chs=200x200&chld=M%%7C0&cht=qr&chl=%s"

// ChartURL wraps a provisioning URI into a QR image URL using
// DefaultChartFormat. The whole otpauth URI is URL-encoded again as a single
// query value.
func ChartURL(otpauthURI string) string {
	return ChartURLWithFormat(DefaultChartFormat, otpauthURI)
}

// ChartURLWithFormat is ChartURL with a caller-supplied format string, for
// embedders pointing the wrapper at their own QR rendering service. The
// format must contain exactly one %s verb.
func ChartURLWithFormat(format, otpauthURI string) string {
	return fmt.Sprintf(format, url.QueryEscape(otpauthURI))
}
