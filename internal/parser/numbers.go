package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseLocalizedFloat parses a locale-formatted price string ("1 234,50 ₽")
// into a float. It strips whitespace, non-breaking spaces and the currency
// symbol, converts a decimal comma to a dot and discards anything else.
// ok is false on empty or unparsable input; the function never fails louder
// than that.
func ParseLocalizedFloat(raw string) (float64, bool) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return 0, false
	}

	t = strings.ReplaceAll(t, " ", "")
	t = strings.ReplaceAll(t, "₽", "")
	t = strings.ReplaceAll(t, ",", ".")

	var b strings.Builder
	for _, r := range t {
		if r == '.' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseLeadingInt extracts the first run of digits from s. Missing or
// unparsable input yields 0.
func parseLeadingInt(s string) int {
	m := digitRun.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
