package acsearch

// Option configures an Automaton at build time. Options are baked into the
// automaton and apply to every search performed with it.
type Option func(*settings)

type settings struct {
	caseSensitive bool
	checkBounds   bool
	normalize     bool
}

func defaultSettings() settings {
	return settings{
		caseSensitive: true,
		checkBounds:   true,
	}
}

// WithCaseSensitive sets case sensitive matching. Default is true.
//
// Case insensitive matching folds every rune of keywords and text to a
// canonical rune of its Unicode simple case folding orbit. Folding never
// changes the number of runes, so offsets always refer to the text as given.
func WithCaseSensitive(on bool) Option {
	return func(s *settings) {
		s.caseSensitive = on
	}
}

// CaseInsensitive is a shortcut for WithCaseSensitive(false).
func CaseInsensitive() Option {
	return WithCaseSensitive(false)
}

// WithCheckBounds sets word boundary checking. Default is true.
//
// With bounds checking enabled, a match is reported only if the rune
// immediately before it and the rune immediately after it are not word runes.
// Start and end of text count as boundaries.
// Word runes are letters, numbers, combining marks and connector
// punctuation (including '_').
func WithCheckBounds(on bool) Option {
	return func(s *settings) {
		s.checkBounds = on
	}
}

// IgnoreBounds is a shortcut for WithCheckBounds(false).
func IgnoreBounds() Option {
	return WithCheckBounds(false)
}

// WithNormalization makes Build normalize keys to Unicode NFC before
// insertion. Default is false.
//
// Text is never normalized implicitly, as offsets have to refer to the text
// handed to Search. Use Normalize on text before searching it.
func WithNormalization(on bool) Option {
	return func(s *settings) {
		s.normalize = on
	}
}
