package parser

import (
	"strings"
)

// ResolveIdentifier derives the stable product code (RPC). First success
// wins: a digit run from the SKU element text, then the digits of the
// product URL, then the URL itself. The result is never empty for a
// non-empty URL.
func ResolveIdentifier(skuText, pageURL string) string {
	if m := digitRun.FindString(skuText); m != "" {
		return m
	}

	var digits strings.Builder
	for _, r := range pageURL {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() > 0 {
		return digits.String()
	}

	return pageURL
}
