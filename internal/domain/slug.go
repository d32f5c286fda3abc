package domain

import (
	"strings"
	"unicode"
)

// germanReplacer transliterates the German diacritics before lowercasing,
// so "Ä" becomes "Ae" and only then "ae".
var germanReplacer = strings.NewReplacer(
	"Ä", "Ae",
	"Ö", "Oe",
	"Ü", "Ue",
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Normalize trims the text and collapses every whitespace run into a single space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Slug derives a filesystem-safe identifier from text.
// The result only contains [a-z0-9_-].
//
// Characters outside that set are dropped and underscore runs collapsed before
// whitespace is replaced, so "Q & A" becomes "q_a" while "new _TASK" keeps
// both underscores: "new__task".
func Slug(text string) string {
	s := strings.ToLower(germanReplacer.Replace(text))

	var kept strings.Builder
	kept.Grow(len(s))
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r == '_':
			if !lastUnderscore {
				kept.WriteByte('_')
			}
			lastUnderscore = true
		case isSlugRune(r) || unicode.IsSpace(r):
			kept.WriteRune(r)
			lastUnderscore = false
		}
	}

	var b strings.Builder
	b.Grow(kept.Len())
	inSpace := false
	for _, r := range kept.String() {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
