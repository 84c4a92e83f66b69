package pipeline

import (
	"regexp"
	"strings"
)

// An ASIN is one letter followed by nine alphanumerics, 10 characters
// total, uppercase.
var (
	asinShape = regexp.MustCompile(`^[A-Z][0-9A-Z]{9}$`)
	asinInURL = regexp.MustCompile(`/dp/([0-9A-Za-z]{10})`)
	asinLoose = regexp.MustCompile(`\b[A-Za-z][0-9A-Za-z]{9}\b`)
)

// IsASIN reports whether s is exactly a normalized ASIN.
func IsASIN(s string) bool {
	return asinShape.MatchString(s)
}

// ExtractASIN pulls a normalized ASIN out of free-form text: a bare
// code (possibly quoted or lowercased), an Amazon product URL, or an
// ASIN-shaped substring buried in longer text. Returns "" when nothing
// matches; absence is not an error.
func ExtractASIN(raw string) string {
	trimmed := strings.Trim(strings.TrimSpace(raw), `"'`)
	if trimmed == "" {
		return ""
	}

	if upper := strings.ToUpper(trimmed); asinShape.MatchString(upper) {
		return upper
	}

	if m := asinInURL.FindStringSubmatch(raw); m != nil {
		return strings.ToUpper(m[1])
	}

	if m := asinLoose.FindString(trimmed); m != "" {
		return strings.ToUpper(m)
	}

	return ""
}
