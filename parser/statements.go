package parser

import (
	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/token"
)

// parseStatement dispatches on the leading token. Imports and exports are
// only accepted at the top level of a program.
func (p *parser) parseStatement(topLevel bool) (ast.Statement, error) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.unexpected("statement")
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch tok.Kind {
	case token.Import:
		if !topLevel {
			return nil, p.errorAt(tok, "unexpected `import'; imports are only allowed at the top level")
		}
		return p.parseImport()
	case token.Export:
		if !topLevel {
			return nil, p.errorAt(tok, "unexpected `export'; exports are only allowed at the top level")
		}
		return p.parseExport()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Return:
		return p.parseReturn()
	case token.Break:
		p.cur.next()
		return &ast.BreakStmt{Position: tok.Pos}, p.endStatement()
	case token.Continue:
		p.cur.next()
		return &ast.ContinueStmt{Position: tok.Pos}, p.endStatement()
	case token.Pass:
		p.cur.next()
		return &ast.PassStmt{Position: tok.Pos}, p.endStatement()
	case token.Type:
		return p.parseTypeAlias()
	}
	return p.parseExpressionStatement()
}

// endStatement consumes the terminator of a simple statement: a NewLine,
// or a `;' that may itself be followed by a NewLine.
func (p *parser) endStatement() error {
	if p.cur.match(token.Semicolon) {
		p.cur.match(token.NewLine)
		return nil
	}
	return p.expectNewline()
}

// parseBlock parses the body after a `:'. A NewLine starts an indented
// block; otherwise the body is a single inline statement.
func (p *parser) parseBlock() (ast.Statement, error) {
	if !p.cur.match(token.NewLine) {
		return p.parseStatement(false)
	}
	if _, err := p.expect(token.Indent, "indented block"); err != nil {
		return nil, err
	}

	block := &ast.BlockStmt{}
	for {
		stmt, err := p.parseStatement(false)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if p.cur.atEnd() || p.cur.match(token.Dedent) {
			break
		}
	}
	block.Position = block.Statements[0].Pos()
	return block, nil
}

func (p *parser) parseIf() (ast.Statement, error) {
	keyword := p.cur.next()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "`:' after `if' condition"); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Position: keyword.Pos, Condition: cond, Then: then}
	if !p.cur.match(token.Else) {
		return stmt, nil
	}
	switch {
	case p.cur.check(token.If):
		stmt.Else, err = p.parseStatement(false)
	case p.cur.match(token.Colon):
		stmt.Else, err = p.parseBlock()
	default:
		err = p.unexpected("`:' after `else'")
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *parser) parseWhile() (ast.Statement, error) {
	keyword := p.cur.next()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "`:' after `while' condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Position: keyword.Pos, Condition: cond, Body: body}, nil
}

func (p *parser) parseReturn() (ast.Statement, error) {
	keyword := p.cur.next()
	stmt := &ast.ReturnStmt{Position: keyword.Pos}

	switch {
	case p.cur.atEnd(), p.cur.check(token.Dedent):
		return stmt, nil
	case p.cur.check(token.NewLine), p.cur.check(token.Semicolon):
		return stmt, p.endStatement()
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	return stmt, p.endStatement()
}

// parseTypeAlias parses `type Name = Type`. The terminator is optional.
func (p *parser) parseTypeAlias() (ast.Statement, error) {
	keyword := p.cur.next()
	name, err := p.expect(token.Ident, "identifier after `type'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign, "`=' after `type "+name.Value+"'"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.cur.check(token.NewLine) || p.cur.check(token.Semicolon) {
		if err := p.endStatement(); err != nil {
			return nil, err
		}
	}
	return &ast.TypeStmt{Position: keyword.Pos, Name: name.Value, Type: typ}, nil
}

func (p *parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.cur.peek(); ok && tok.Kind == token.Assign {
		if !isAssignable(expr) {
			return nil, p.errorAt(tok, "cannot assign to %s expression", expr.Kind())
		}
		p.cur.next()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Position: expr.Pos(), Target: expr, Value: value}, p.endStatement()
	}

	return &ast.ExprStmt{Position: expr.Pos(), Expression: expr}, p.endStatement()
}

// isAssignable reports whether expr can appear left of `='. Optional
// selectors are excluded because they may not yield a location.
func isAssignable(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.IdentExpr:
		return true
	case *ast.FieldExpr:
		return !e.Optional
	case *ast.SubscriptExpr:
		return !e.Optional
	}
	return false
}
