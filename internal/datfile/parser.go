package datfile

import (
	"fmt"
	"os"
)

// block is the parsed form of one parenthesized section. Each key keeps the
// scalar values and child blocks recorded against it, in input order, so a
// repeated key such as rom accumulates instead of overwriting.
type block struct {
	scalars  map[string][]string
	children map[string][]*block
}

func newBlock() *block {
	return &block{
		scalars:  make(map[string][]string),
		children: make(map[string][]*block),
	}
}

// scalar returns the first value recorded for key, or "".
func (b *block) scalar(key string) string {
	values := b.scalars[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) next() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

// Parse reads a DAT document into its header and game entries. Block types
// other than the header and game blocks are consumed and dropped, and stray
// tokens between blocks are ignored.
func Parse(content string) *File {
	p := &parser{tokens: lex(content)}
	file := &File{}
	for {
		tok, ok := p.next()
		if !ok {
			return file
		}
		if tok.kind != tokenWord {
			continue
		}
		open, ok := p.peek()
		if !ok {
			return file
		}
		if open.kind != tokenOpen {
			continue
		}
		p.pos++
		blk := p.parseBlock()
		switch tok.text {
		case "clrmamepro", "header":
			file.Header = headerFromBlock(blk)
		case "game", "machine":
			file.Games = append(file.Games, gameFromBlock(blk))
		}
	}
}

// ParseFile reads and parses the DAT file at path.
func ParseFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dat file: %w", err)
	}
	return Parse(string(content)), nil
}

// parseBlock consumes tokens through the block's closing parenthesis and
// returns the tagged tree. A key followed by ( starts a child block; a key
// followed by a word or string records a scalar. Anonymous nested blocks are
// parsed and discarded to keep the token stream aligned.
func (p *parser) parseBlock() *block {
	b := newBlock()
	for {
		tok, ok := p.next()
		if !ok {
			return b
		}
		switch tok.kind {
		case tokenClose:
			return b
		case tokenOpen:
			p.parseBlock()
		case tokenWord:
			value, ok := p.peek()
			if !ok {
				return b
			}
			switch value.kind {
			case tokenOpen:
				p.pos++
				b.children[tok.text] = append(b.children[tok.text], p.parseBlock())
			case tokenWord, tokenString:
				p.pos++
				b.scalars[tok.text] = append(b.scalars[tok.text], value.text)
			}
		}
	}
}
