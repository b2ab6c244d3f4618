package parser

import (
	"errors"
	"fmt"

	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/lexer"
	"github.com/dhamidi/snek/token"
)

// DefaultMaxDepth bounds the recursion of a parse unless WithMaxDepth says
// otherwise.
const DefaultMaxDepth = 512

type Option func(*parser)

// WithFile sets the file name recorded in token positions when the parser
// lexes the source itself.
func WithFile(path string) Option {
	return func(p *parser) {
		p.file = path
	}
}

// WithMaxDepth limits how deeply statements, expressions and types may nest.
// Zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(p *parser) {
		p.maxDepth = depth
	}
}

// parser holds the state of exactly one parse. It is created by an entry
// point and dropped when that entry point returns.
type parser struct {
	file     string
	maxDepth int
	depth    int
	cur      cursor
}

func newParser(opts []Option) *parser {
	p := &parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse lexes and parses a whole program.
func Parse(src []byte, opts ...Option) ([]ast.Statement, error) {
	p := newParser(opts)
	if err := p.tokenize(src); err != nil {
		return nil, err
	}
	return p.parseProgram()
}

// ParseTokens parses a program from an already lexed token sequence.
func ParseTokens(tokens []token.Token, opts ...Option) ([]ast.Statement, error) {
	p := newParser(opts)
	p.cur = cursor{tokens: tokens}
	return p.parseProgram()
}

// ParseExpression parses src as exactly one expression.
func ParseExpression(src []byte, opts ...Option) (ast.Expression, error) {
	p := newParser(opts)
	if err := p.tokenize(src); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseType parses src as exactly one type annotation.
func ParseType(src []byte, opts ...Option) (ast.Type, error) {
	p := newParser(opts)
	if err := p.tokenize(src); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return typ, nil
}

func (p *parser) tokenize(src []byte) error {
	tokens, err := lexer.Tokenize(src, p.file)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return &SyntaxError{Message: lexErr.Message, Pos: lexErr.Pos, Err: err}
		}
		return &SyntaxError{Message: err.Error(), Err: err}
	}
	p.cur = cursor{tokens: tokens}
	return nil
}

func (p *parser) parseProgram() ([]ast.Statement, error) {
	var statements []ast.Statement
	for !p.cur.atEnd() {
		stmt, err := p.parseStatement(true)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// finish accepts one trailing NewLine and rejects anything else left over.
func (p *parser) finish() error {
	p.cur.match(token.NewLine)
	if !p.cur.atEnd() {
		return p.unexpected("end of input")
	}
	return nil
}

// enter records one level of recursion and fails once the limit is passed.
// Every successful enter is paired with a leave.
func (p *parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.depth--
		return &SyntaxError{
			Message: fmt.Sprintf("nesting exceeds maximum depth of %d", p.maxDepth),
			Pos:     p.pos(),
			Err:     ErrNestingTooDeep,
		}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// pos returns the position of the current token, or of the last token when
// the input is exhausted.
func (p *parser) pos() token.Position {
	if tok, ok := p.cur.peek(); ok {
		return tok.Pos
	}
	if tok, ok := p.cur.last(); ok {
		return tok.Pos
	}
	return token.Position{File: p.file}
}

// unexpected reports the current token, or the end of input, as not being
// what the grammar needed at this point.
func (p *parser) unexpected(missing string) error {
	tok, ok := p.cur.peek()
	if !ok {
		return &SyntaxError{
			Message: "unexpected end of input; missing " + missing,
			Pos:     p.pos(),
		}
	}
	return &SyntaxError{
		Message: fmt.Sprintf("unexpected %s; missing %s", tok, missing),
		Pos:     tok.Pos,
		Found:   &tok,
	}
}

// errorAt fails on a token that has the right kind but is still invalid.
func (p *parser) errorAt(tok token.Token, format string, args ...any) error {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Pos:     tok.Pos,
		Found:   &tok,
	}
}

func (p *parser) expect(kind token.Kind, missing string) (token.Token, error) {
	if !p.cur.check(kind) {
		return token.Token{}, p.unexpected(missing)
	}
	return p.cur.next(), nil
}

// expectNewline consumes a NewLine marker. End of input counts as one.
func (p *parser) expectNewline() error {
	if p.cur.atEnd() || p.cur.match(token.NewLine) {
		return nil
	}
	return p.unexpected("new line")
}

func quote(kind token.Kind) string {
	return "`" + kind.String() + "'"
}
