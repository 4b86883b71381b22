// internal/schedule/sanitize.go
package schedule

import (
	"regexp"
	"strings"
	"unicode"
)

// Zoezi class names and descriptions are pasted from assorted editors and
// arrive with zero-width joiners, soft hyphens and the occasional emoji.
// CleanText filters by Unicode category instead of hand-rolled code-point
// ranges so the result is stable across runtimes.

var allowedSymbols = map[rune]bool{
	'™': true,
	'®': true,
	'©': true,
}

func allowedRune(r rune) bool {
	if unicode.IsControl(r) || unicode.In(r, unicode.Cf, unicode.Mn) {
		return false
	}
	switch {
	case r >= 0x20 && r <= 0x7E: // ASCII printable
		return true
	case r >= 0xA0 && r <= 0xFF: // Latin-1 supplement, covers å ä ö Å Ä Ö
		return true
	case r >= 0x100 && r <= 0x17F: // Latin extended-A
		return true
	}
	return allowedSymbols[r]
}

// CleanText strips invisible and out-of-range characters, collapses runs of
// whitespace to a single space and trims. Applying it twice is a no-op.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if allowedRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	entityReplacer = strings.NewReplacer("&nbsp;", " ", "&amp;", "&")
)

// StripHTML replaces markup with spaces, resolves the couple of entities
// Zoezi actually emits and then runs the result through CleanText.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}
	text := htmlTagPattern.ReplaceAllString(html, " ")
	text = entityReplacer.Replace(text)
	return CleanText(text)
}
