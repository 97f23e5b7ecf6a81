package miluim

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markStripper decomposes text and removes combining marks, which for
// Hebrew strips niqqud and cantillation.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for fuzzy comparison. It strips
// combining marks, lowercases, replaces punctuation and symbols with
// spaces, and collapses whitespace runs. The result is stable across
// the spelling and spacing variations seen in post bodies.
func Normalize(s string) string {
	stripped, _, err := transform.String(markStripper, s)
	if err != nil {
		stripped = s
	}

	var sb strings.Builder
	sb.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(r)
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
