// Package lexer turns Snek source text into a token sequence.
//
// Indentation is resolved here: every non-blank logical line is terminated by
// a NewLine token, and changes of indentation width produce Indent and Dedent
// tokens, so the parser never has to look at whitespace. Line breaks inside
// (), [] and {} are insignificant.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/snek/token"
)

const tabWidth = 8

// Error describes a lexical error.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Message
}

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int

	indents       []int
	depth         int
	atLineStart   bool
	lineHasTokens bool
	tokens        []token.Token
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:       input,
		file:        file,
		line:        1,
		column:      1,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Tokenize scans the whole input and returns its tokens.
func Tokenize(input []byte, file string) ([]token.Token, error) {
	return NewLexer(input, file).Tokenize()
}

func (l *Lexer) Position() token.Position {
	return token.Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) Tokenize() ([]token.Token, error) {
	for {
		if l.atLineStart && l.depth == 0 {
			if err := l.scanIndentation(); err != nil {
				return nil, err
			}
		}
		l.skipSpaces()
		if l.eof() {
			break
		}

		if l.peek() == '\n' {
			start := l.Position()
			l.advance()
			if l.depth == 0 {
				if l.lineHasTokens {
					l.emitMarker(token.NewLine, start)
				}
				l.atLineStart = true
			}
			continue
		}

		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		tok.End = l.pos
		l.tokens = append(l.tokens, tok)
		l.lineHasTokens = true
	}

	end := l.Position()
	if l.lineHasTokens {
		l.emitMarker(token.NewLine, end)
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emitMarker(token.Dedent, end)
	}
	return l.tokens, nil
}

func (l *Lexer) emitMarker(kind token.Kind, pos token.Position) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Pos: pos, End: pos.Offset})
	if kind == token.NewLine {
		l.lineHasTokens = false
	}
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// scanIndentation measures the indentation of the next non-blank line and
// emits Indent or Dedent tokens for it. Blank and comment-only lines are
// consumed without producing tokens.
func (l *Lexer) scanIndentation() error {
	for {
		width := 0
	measure:
		for !l.eof() {
			switch l.peek() {
			case ' ':
				width++
			case '\t':
				width = (width/tabWidth + 1) * tabWidth
			case '\r':
			default:
				break measure
			}
			l.advance()
		}

		if l.eof() {
			l.atLineStart = false
			return nil
		}
		switch l.peek() {
		case '\n':
			l.advance()
			continue
		case '#':
			l.skipComment()
			continue
		}

		l.atLineStart = false
		pos := l.Position()
		top := l.indents[len(l.indents)-1]
		switch {
		case width > top:
			l.indents = append(l.indents, width)
			l.emitMarker(token.Indent, pos)
		case width < top:
			for width < l.indents[len(l.indents)-1] {
				l.indents = l.indents[:len(l.indents)-1]
				l.emitMarker(token.Dedent, pos)
			}
			if width != l.indents[len(l.indents)-1] {
				return l.errorf(pos, "unindent does not match any outer indentation level")
			}
		}
		return nil
	}
}

func (l *Lexer) skipSpaces() {
	for !l.eof() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '#':
			l.skipComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for !l.eof() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) scanToken() (token.Token, error) {
	start := l.Position()
	ch := l.peek()

	switch {
	case isLetter(ch):
		return l.scanIdentOrKeyword(start), nil
	case ch >= utf8.RuneSelf:
		r, _ := utf8.DecodeRune(l.input[l.pos:])
		if unicode.IsLetter(r) {
			return l.scanIdentOrKeyword(start), nil
		}
		return token.Token{}, l.errorf(start, "unexpected character %q", r)
	case isDigit(ch):
		return l.scanNumber(start)
	case ch == '"' || ch == '\'':
		return l.scanString(start)
	}
	return l.scanOperator(start)
}

func (l *Lexer) scanIdentOrKeyword(start token.Position) token.Token {
	for !l.eof() {
		ch := l.peek()
		if isLetter(ch) || isDigit(ch) {
			l.advance()
			continue
		}
		if ch < utf8.RuneSelf {
			break
		}
		r, size := utf8.DecodeRune(l.input[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advanceN(size)
	}
	literal := string(l.input[start.Offset:l.pos])
	return token.Token{Kind: token.Lookup(literal), Pos: start, Value: literal}
}

func (l *Lexer) scanNumber(start token.Position) (token.Token, error) {
	kind := token.Int

	if l.peek() == '0' && isBasePrefix(l.peekN(1)) {
		l.advanceN(2)
		digits := 0
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
			digits++
		}
		if digits == 0 {
			return token.Token{}, l.errorf(start, "malformed number literal")
		}
	} else {
		l.scanDigits()
		if l.peek() == '.' && isDigit(l.peekN(1)) {
			kind = token.Float
			l.advance()
			l.scanDigits()
		}
		if l.peek() == 'e' || l.peek() == 'E' {
			next := l.peekN(1)
			if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekN(2))) {
				kind = token.Float
				l.advance()
				if next == '+' || next == '-' {
					l.advance()
				}
				l.scanDigits()
			}
		}
	}

	if isLetter(l.peek()) {
		return token.Token{}, l.errorf(l.Position(), "unexpected %q in number literal", l.peek())
	}
	literal := string(l.input[start.Offset:l.pos])
	return token.Token{Kind: kind, Pos: start, Value: literal}, nil
}

func (l *Lexer) scanDigits() {
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

func (l *Lexer) scanString(start token.Position) (token.Token, error) {
	quote := l.advance()
	var buf []byte

	for {
		if l.eof() || l.peek() == '\n' {
			return token.Token{}, l.errorf(start, "unterminated string literal")
		}
		escPos := l.Position()
		ch := l.advance()
		if ch == quote {
			break
		}
		if ch != '\\' {
			buf = append(buf, ch)
			continue
		}
		if l.eof() {
			return token.Token{}, l.errorf(start, "unterminated string literal")
		}
		switch esc := l.advance(); esc {
		case 'n':
			buf = append(buf, '\n')
		case 't':
			buf = append(buf, '\t')
		case 'r':
			buf = append(buf, '\r')
		case '0':
			buf = append(buf, 0)
		case '\\', '"', '\'':
			buf = append(buf, esc)
		default:
			return token.Token{}, l.errorf(escPos, "unknown escape sequence \\%c", esc)
		}
	}

	return token.Token{Kind: token.Str, Pos: start, Value: string(buf)}, nil
}

func (l *Lexer) scanOperator(start token.Position) (token.Token, error) {
	ch := l.advance()
	kind := token.Invalid

	switch ch {
	case '(':
		kind = token.LParen
		l.depth++
	case '[':
		kind = token.LBracket
		l.depth++
	case '{':
		kind = token.LBrace
		l.depth++
	case ')':
		kind = token.RParen
		l.closeBracket()
	case ']':
		kind = token.RBracket
		l.closeBracket()
	case '}':
		kind = token.RBrace
		l.closeBracket()
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case '.':
		kind = token.Dot
	case '+':
		kind = token.Add
	case '*':
		kind = token.Mul
	case '/':
		kind = token.Div
	case '%':
		kind = token.Mod
	case '^':
		kind = token.Pow
	case '~':
		kind = token.BitNot
	case '?':
		if l.peek() == '.' {
			l.advance()
			kind = token.OptionalDot
		}
	case '-':
		kind = l.pick('>', token.Arrow, token.Sub)
	case '=':
		kind = l.pick('=', token.EQ, token.Assign)
	case '!':
		kind = l.pick('=', token.NE, token.Not)
	case '&':
		kind = l.pick('&', token.And, token.BitAnd)
	case '|':
		kind = l.pick('|', token.Or, token.BitOr)
	case '<':
		switch l.peek() {
		case '=':
			l.advance()
			kind = token.LE
		case '<':
			l.advance()
			kind = token.Shl
		default:
			kind = token.LT
		}
	case '>':
		switch l.peek() {
		case '=':
			l.advance()
			kind = token.GE
		case '>':
			l.advance()
			kind = token.Shr
		default:
			kind = token.GT
		}
	}

	if kind == token.Invalid {
		return token.Token{}, l.errorf(start, "unexpected character %q", ch)
	}
	return token.Token{Kind: kind, Pos: start}, nil
}

// pick consumes next and returns two when the following byte is next,
// otherwise one.
func (l *Lexer) pick(next byte, two, one token.Kind) token.Kind {
	if l.peek() == next {
		l.advance()
		return two
	}
	return one
}

func (l *Lexer) closeBracket() {
	if l.depth > 0 {
		l.depth--
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBasePrefix(ch byte) bool {
	switch ch {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}
