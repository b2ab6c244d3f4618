package parser

import (
	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/token"
)

// parseImport parses `import spec, spec from "path"`.
func (p *parser) parseImport() (ast.Statement, error) {
	keyword := p.cur.next()
	stmt := &ast.ImportStmt{Position: keyword.Pos}

	for {
		spec, err := p.parseImportSpecifier()
		if err != nil {
			return nil, err
		}
		stmt.Specifiers = append(stmt.Specifiers, spec)
		if !p.cur.match(token.Comma) {
			break
		}
	}

	if _, err := p.expect(token.From, "`from' and module path in `import' statement"); err != nil {
		return nil, err
	}
	path, err := p.expect(token.Str, "module path after `from'")
	if err != nil {
		return nil, err
	}
	stmt.Path = path.Value
	return stmt, p.endStatement()
}

func (p *parser) parseImportSpecifier() (ast.ImportSpecifier, error) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.unexpected("import specifier")
	}

	switch tok.Kind {
	case token.Ident:
		p.cur.next()
		spec := &ast.NamedSpecifier{Position: tok.Pos, Name: tok.Value}
		if p.cur.match(token.As) {
			alias, err := p.expect(token.Ident, "identifier after `as'")
			if err != nil {
				return nil, err
			}
			spec.Alias = alias.Value
		}
		return spec, nil
	case token.Mul:
		p.cur.next()
		if _, err := p.expect(token.As, "`as' after `import *'"); err != nil {
			return nil, err
		}
		name, err := p.expect(token.Ident, "identifier after `import * as'")
		if err != nil {
			return nil, err
		}
		return &ast.StarSpecifier{Position: tok.Pos, Name: name.Value}, nil
	}
	return nil, p.unexpected("import specifier")
}

// parseExport parses the three export forms:
//
//	export name
//	export name = expr
//	export type Name = Type
func (p *parser) parseExport() (ast.Statement, error) {
	keyword := p.cur.next()

	if p.cur.match(token.Type) {
		name, err := p.expect(token.Ident, "identifier after `export type'")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Assign, "`=' after `export type "+name.Value+"'"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.ExportTypeStmt{Position: keyword.Pos, Name: name.Value, Type: typ}, p.endStatement()
	}

	name, err := p.expect(token.Ident, "identifier after `export'")
	if err != nil {
		return nil, err
	}
	if !p.cur.match(token.Assign) {
		return &ast.ExportNameStmt{Position: keyword.Pos, Name: name.Value}, p.endStatement()
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExportExprStmt{Position: keyword.Pos, Name: name.Value, Expression: expr}, p.endStatement()
}
