package titles

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean applies Unicode NFC normalization and trims surrounding whitespace.
// Source readers run every incoming title through Clean before storing it so
// byte-level comparisons behave the same regardless of which source supplied
// the text.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Normalize reduces a raw title to a matching key: lowercase, parenthesized
// and bracketed spans removed, punctuation replaced with spaces, whitespace
// collapsed, leading articles dropped. The output contains only letters,
// digits, and single spaces, and Normalize(Normalize(s)) == Normalize(s).
func Normalize(title string) string {
	s := strings.ToLower(norm.NFC.String(title))
	s = stripSpans(s, '(', ')')
	s = stripSpans(s, '[', ']')
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	for strings.HasPrefix(s, "the ") {
		s = s[len("the "):]
	}
	return s
}

// stripSpans removes every open..close span, scanning for the first close
// after each open. The scan is not nesting-aware: release-list titles do
// not nest brackets, and an unmatched open leaves the rest of the string
// untouched.
func stripSpans(s string, open, close byte) string {
	for {
		start := strings.IndexByte(s, open)
		if start < 0 {
			return s
		}
		length := strings.IndexByte(s[start:], close)
		if length < 0 {
			return s
		}
		s = s[:start] + s[start+length+1:]
	}
}
