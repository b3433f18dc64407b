package titles

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ExtractTags returns the depth-1 parenthesized and bracketed spans of a raw
// title, sorted and deduplicated. Nested delimiters are kept verbatim inside
// the enclosing tag, so "Game (Proto (Alt))" yields one tag "Proto (Alt)".
// Unmatched delimiters capture nothing.
func ExtractTags(title string) []string {
	var tags []string
	depth := 0
	start := 0
	for i := 0; i < len(title); i++ {
		switch title[i] {
		case '(', '[':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')', ']':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				tags = append(tags, title[start:i])
			}
		}
	}
	if len(tags) < 2 {
		return tags
	}
	sort.Strings(tags)
	out := tags[:1]
	for _, tag := range tags[1:] {
		if tag != out[len(out)-1] {
			out = append(out, tag)
		}
	}
	return out
}

// ExtractWords splits a normalized title into its multi-character tokens and
// returns them as a set. Single-character tokens carry no matching signal and
// are dropped. Callers use the set for inverted-index membership only; there
// is no ordering.
func ExtractWords(normalized string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, field := range strings.Fields(normalized) {
		if utf8.RuneCountInString(field) > 1 {
			words[field] = struct{}{}
		}
	}
	return words
}
