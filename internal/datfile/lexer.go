package datfile

import "strings"

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenString
	tokenOpen
	tokenClose
)

type token struct {
	kind tokenKind
	text string
}

// lex splits a document into words, quoted strings, and parentheses. Words
// end at whitespace or a parenthesis; a backslash inside a quoted string
// escapes only the quote character. An unterminated string runs to the end
// of input rather than failing.
func lex(content string) []token {
	var tokens []token
	for i := 0; i < len(content); {
		c := content[i]
		switch {
		case isSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenOpen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenClose})
			i++
		case c == '"':
			text, next := lexQuoted(content, i+1)
			tokens = append(tokens, token{kind: tokenString, text: text})
			i = next
		default:
			start := i
			for i < len(content) && !isDelimiter(content[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenWord, text: content[start:i]})
		}
	}
	return tokens
}

func lexQuoted(content string, start int) (string, int) {
	escaped := false
	for i := start; i < len(content); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch content[i] {
		case '\\':
			escaped = true
		case '"':
			return unescapeQuotes(content[start:i]), i + 1
		}
	}
	return unescapeQuotes(content[start:]), len(content)
}

func unescapeQuotes(s string) string {
	if !strings.Contains(s, `\"`) {
		return s
	}
	return strings.ReplaceAll(s, `\"`, `"`)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')'
}
