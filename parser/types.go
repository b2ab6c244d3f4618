package parser

import (
	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/token"
)

// parseType parses a full type annotation: a list-suffixed primary type,
// optionally followed by a flat chain of `&` or `|` members.
func (p *parser) parseType() (ast.Type, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	first, err := p.parseListType()
	if err != nil {
		return nil, err
	}

	var combinator, other token.Kind
	switch {
	case p.cur.check(token.BitAnd):
		combinator, other = token.BitAnd, token.BitOr
	case p.cur.check(token.BitOr):
		combinator, other = token.BitOr, token.BitAnd
	default:
		return first, nil
	}

	types := []ast.Type{first}
	for p.cur.match(combinator) {
		member, err := p.parseListType()
		if err != nil {
			return nil, err
		}
		types = append(types, member)
	}
	if p.cur.check(other) {
		tok, _ := p.cur.peek()
		return nil, p.errorAt(tok, "cannot mix `&' and `|' in one type")
	}

	if combinator == token.BitAnd {
		return &ast.IntersectionType{Position: first.Pos(), Types: types}, nil
	}
	return &ast.UnionType{Position: first.Pos(), Types: types}, nil
}

// parseListType applies `[]` suffixes left to right, so Int[][] is a list
// of lists of Int.
func (p *parser) parseListType() (ast.Type, error) {
	typ, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	for p.cur.match(token.LBracket) {
		if _, err := p.expect(token.RBracket, "`]' after `[' in list type"); err != nil {
			return nil, err
		}
		typ = &ast.ListType{Position: typ.Pos(), Element: typ}
	}
	return typ, nil
}

func (p *parser) parsePrimaryType() (ast.Type, error) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.unexpected("type")
	}

	switch tok.Kind {
	case token.Ident:
		p.cur.next()
		if builtin, ok := ast.LookupBuiltin(tok.Value); ok {
			return &ast.BuiltinType{Position: tok.Pos, Builtin: builtin}, nil
		}
		return &ast.NamedType{Position: tok.Pos, Name: tok.Value}, nil
	case token.Str:
		p.cur.next()
		return &ast.StringType{Position: tok.Pos, Value: tok.Value}, nil
	case token.LBracket:
		p.cur.next()
		types, err := p.parseTypeList(token.RBracket, "tuple type")
		if err != nil {
			return nil, err
		}
		return &ast.TupleType{Position: tok.Pos, Types: types}, nil
	case token.LParen:
		return p.parseFunctionType()
	case token.LBrace:
		return p.parseRecordType()
	}
	return nil, p.unexpected("type")
}

// parseTypeList parses comma separated types up to and including the
// closing token. A trailing comma is allowed.
func (p *parser) parseTypeList(closing token.Kind, what string) ([]ast.Type, error) {
	missing := quote(closing) + " to close " + what
	var types []ast.Type
	for {
		if p.cur.atEnd() {
			return nil, p.unexpected(missing)
		}
		if p.cur.match(closing) {
			return types, nil
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		types = append(types, typ)
		if !p.cur.check(token.Comma) && !p.cur.check(closing) {
			return nil, p.unexpected(missing)
		}
		p.cur.match(token.Comma)
	}
}

// parseFunctionType parses `(Params) -> Result` where the arrow and result
// are optional. The result extends as far right as a type can. Types have no
// grouping parentheses, so `(A | B)[]` is a list of result-less functions.
func (p *parser) parseFunctionType() (ast.Type, error) {
	open := p.cur.next()
	params, err := p.parseTypeList(token.RParen, "function type parameters")
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionType{Position: open.Pos, Params: params}
	if p.cur.match(token.Arrow) {
		if fn.Result, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	return fn, nil
}

func (p *parser) parseRecordType() (ast.Type, error) {
	open := p.cur.next()
	record := &ast.RecordType{Position: open.Pos}
	const missing = "`}' to close record type"

	for {
		if p.cur.atEnd() {
			return nil, p.unexpected(missing)
		}
		if p.cur.match(token.RBrace) {
			return record, nil
		}
		name, err := p.expect(token.Ident, "field name in record type")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "`:' after record type field name"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		record.Fields = append(record.Fields, &ast.RecordTypeField{
			Position: name.Pos,
			Name:     name.Value,
			Type:     typ,
		})
		if !p.cur.check(token.Comma) && !p.cur.check(token.RBrace) {
			return nil, p.unexpected(missing)
		}
		p.cur.match(token.Comma)
	}
}
