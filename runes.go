package acsearch

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode normalization form NFC.
//
// Word boundary checks look at single runes. A decomposed "é" (e + U+0301)
// is two runes, so keywords and texts should be in the same normalization
// form. Offsets of matches found in Normalize(s) refer to the normalized text.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// foldRune maps r to the smallest rune of its simple case folding orbit.
// For ASCII this is the upper case letter.
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}
	least := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < least {
			least = f
		}
	}
	return least
}

// isWordRune is the predicate for word boundaries: letters, numbers,
// combining marks and connector punctuation.
func isWordRune(r rune) bool {
	if r < utf8.RuneSelf {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_'
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) ||
		unicode.Is(unicode.Pc, r)
}
