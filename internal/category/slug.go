// AngelaMos | 2026
// slug.go

package category

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes to NFD, drops combining marks, then
// recomposes. "Résidence" becomes "Residence".
var stripDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Slugify derives a URL-safe identifier from a display name:
// lowercase, diacritics stripped, runs of anything outside [a-z0-9]
// collapsed to a single hyphen, no leading or trailing hyphen.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	stripped, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))

	pendingHyphen := false
	for _, r := range stripped {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// NormalizeName is the duplicate-detection key for display names:
// surrounding whitespace removed, lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
