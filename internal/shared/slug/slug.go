// Package slug validates and derives URL slugs for organizations.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MinLength = 3
	MaxLength = 50
)

var pattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValid reports whether s is 3 to 50 characters of lowercase letters,
// digits and hyphens.
func IsValid(s string) bool {
	return len(s) >= MinLength && len(s) <= MaxLength && pattern.MatchString(s)
}

// Suggest derives a valid slug from a display name: diacritics are folded,
// runs of other characters collapse to a single hyphen, and short results are
// padded with "-org".
func Suggest(name string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	s := b.String()
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	switch {
	case s == "":
		return "org"
	case len(s) < MinLength:
		return s + "-org"
	}
	return s
}
