package helpers

import (
	"strings"
	"unicode"
)

// GenerateSlug derives a URL-safe identifier from a title: lowercased, word
// runs joined with "-", everything else stripped. Slugs are not unique across
// events; collisions are accepted.
func GenerateSlug(title string) string {
	var b strings.Builder
	lastDash := true // no leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}
