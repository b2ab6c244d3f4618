package parser

import "github.com/dhamidi/snek/token"

// cursor is the read position over a fixed token sequence. It never owns
// or modifies the tokens.
type cursor struct {
	tokens []token.Token
	offset int
}

func (c *cursor) atEnd() bool {
	return c.offset >= len(c.tokens)
}

// check reports whether the current token has the given kind.
func (c *cursor) check(kind token.Kind) bool {
	return !c.atEnd() && c.tokens[c.offset].Kind == kind
}

// match consumes the current token when it has the given kind.
func (c *cursor) match(kind token.Kind) bool {
	if c.check(kind) {
		c.offset++
		return true
	}
	return false
}

func (c *cursor) peek() (token.Token, bool) {
	if c.atEnd() {
		return token.Token{}, false
	}
	return c.tokens[c.offset], true
}

func (c *cursor) next() token.Token {
	tok := c.tokens[c.offset]
	c.offset++
	return tok
}

// last returns the final token of the sequence, used to place errors that
// occur at end of input.
func (c *cursor) last() (token.Token, bool) {
	if len(c.tokens) == 0 {
		return token.Token{}, false
	}
	return c.tokens[len(c.tokens)-1], true
}
