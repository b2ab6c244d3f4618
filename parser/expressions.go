package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/token"
)

// binaryLevels lists the binary operators from lowest to highest binding.
// Every level is left associative.
var binaryLevels = []map[token.Kind]ast.BinaryOp{
	{
		token.EQ: ast.BinaryEQ,
		token.NE: ast.BinaryNE,
	},
	{
		token.LT: ast.BinaryLT,
		token.GT: ast.BinaryGT,
		token.LE: ast.BinaryLE,
		token.GE: ast.BinaryGE,
	},
	{
		token.Add: ast.BinaryAdd,
		token.Sub: ast.BinarySub,
	},
	{
		token.Mul: ast.BinaryMul,
		token.Div: ast.BinaryDiv,
		token.Mod: ast.BinaryMod,
		token.Pow: ast.BinaryPow,
		token.Shl: ast.BinaryShl,
		token.Shr: ast.BinaryShr,
		token.And: ast.BinaryAnd,
		token.Or:  ast.BinaryOr,
	},
}

var unaryOps = map[token.Kind]ast.UnaryOp{
	token.Not:    ast.UnaryNot,
	token.Add:    ast.UnaryPlus,
	token.Sub:    ast.UnaryMinus,
	token.BitNot: ast.UnaryBitNot,
}

func (p *parser) parseExpression() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.parseBinary(0)
}

func (p *parser) parseBinary(level int) (ast.Expression, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.cur.peek()
		if !ok {
			return left, nil
		}
		op, found := binaryLevels[level][tok.Kind]
		if !found {
			return left, nil
		}
		p.cur.next()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Position: left.Pos(), Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (ast.Expression, error) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.unexpected("expression")
	}
	op, isUnary := unaryOps[tok.Kind]
	if !isUnary {
		return p.parsePostfix()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.cur.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Position: tok.Pos, Op: op, Operand: operand}, nil
}

// parsePostfix parses a primary expression followed by any number of call,
// field and subscript selectors. A `?.` marks only the selector it
// introduces as optional.
func (p *parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.cur.match(token.LParen):
			expr, err = p.parseCall(expr, false)
		case p.cur.match(token.Dot):
			expr, err = p.parseField(expr, false)
		case p.cur.match(token.LBracket):
			expr, err = p.parseSubscript(expr, false)
		case p.cur.match(token.OptionalDot):
			switch {
			case p.cur.check(token.Ident):
				expr, err = p.parseField(expr, true)
			case p.cur.match(token.LBracket):
				expr, err = p.parseSubscript(expr, true)
			case p.cur.match(token.LParen):
				expr, err = p.parseCall(expr, true)
			default:
				err = p.unexpected("identifier, `[' or `(' after `?.'")
			}
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseCall(callee ast.Expression, optional bool) (ast.Expression, error) {
	args, err := p.parseExpressionList(token.RParen, "argument list")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Position: callee.Pos(), Callee: callee, Args: args, Optional: optional}, nil
}

func (p *parser) parseField(record ast.Expression, optional bool) (ast.Expression, error) {
	name, err := p.expect(token.Ident, "identifier after `.'")
	if err != nil {
		return nil, err
	}
	return &ast.FieldExpr{Position: record.Pos(), Record: record, Field: name.Value, Optional: optional}, nil
}

func (p *parser) parseSubscript(record ast.Expression, optional bool) (ast.Expression, error) {
	index, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracket, "`]' after subscript"); err != nil {
		return nil, err
	}
	return &ast.SubscriptExpr{Position: record.Pos(), Record: record, Index: index, Optional: optional}, nil
}

// parseExpressionList parses comma separated expressions up to and
// including the closing token. A trailing comma is allowed.
func (p *parser) parseExpressionList(closing token.Kind, what string) ([]ast.Expression, error) {
	missing := quote(closing) + " to close " + what
	var list []ast.Expression
	for {
		if p.cur.atEnd() {
			return nil, p.unexpected(missing)
		}
		if p.cur.match(closing) {
			return list, nil
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
		if !p.cur.check(token.Comma) && !p.cur.check(closing) {
			return nil, p.unexpected(missing)
		}
		p.cur.match(token.Comma)
	}
}

func (p *parser) parsePrimary() (ast.Expression, error) {
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.unexpected("expression")
	}

	switch tok.Kind {
	case token.True, token.False:
		p.cur.next()
		return &ast.BoolExpr{Position: tok.Pos, Value: tok.Kind == token.True}, nil
	case token.Null:
		p.cur.next()
		return &ast.NullExpr{Position: tok.Pos}, nil
	case token.Int:
		p.cur.next()
		return p.intLiteral(tok)
	case token.Float:
		p.cur.next()
		return p.floatLiteral(tok)
	case token.Str:
		p.cur.next()
		return &ast.StrExpr{Position: tok.Pos, Value: tok.Value}, nil
	case token.Ident:
		p.cur.next()
		return &ast.IdentExpr{Position: tok.Pos, Name: tok.Value}, nil
	case token.LBracket:
		p.cur.next()
		elements, err := p.parseExpressionList(token.RBracket, "list literal")
		if err != nil {
			return nil, err
		}
		return &ast.ListExpr{Position: tok.Pos, Elements: elements}, nil
	case token.LBrace:
		p.cur.next()
		return p.parseRecord(tok)
	case token.LParen:
		p.cur.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "`)' to close parenthesized expression"); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Position: tok.Pos, Expression: inner}, nil
	}
	return nil, p.unexpected("expression")
}

// parseRecord parses the fields of a record literal after its `{`. Keys
// are identifiers or string literals.
func (p *parser) parseRecord(open token.Token) (ast.Expression, error) {
	record := &ast.RecordExpr{Position: open.Pos}
	const missing = "`}' to close record literal"

	for {
		if p.cur.atEnd() {
			return nil, p.unexpected(missing)
		}
		if p.cur.match(token.RBrace) {
			return record, nil
		}
		key, _ := p.cur.peek()
		if key.Kind != token.Ident && key.Kind != token.Str {
			return nil, p.unexpected("field name in record literal")
		}
		p.cur.next()
		if _, err := p.expect(token.Colon, "`:' after record field name"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		record.Fields = append(record.Fields, &ast.RecordField{
			Position: key.Pos,
			Name:     key.Value,
			Value:    value,
		})
		if !p.cur.check(token.Comma) && !p.cur.check(token.RBrace) {
			return nil, p.unexpected(missing)
		}
		p.cur.match(token.Comma)
	}
}

// intLiteral decodes a decimal, 0x, 0o or 0b literal into an int64. A
// leading minus is a unary operator applied afterwards, so the literal alone
// must fit: -9223372036854775808 cannot be written and is reported as out of
// range.
func (p *parser) intLiteral(tok token.Token) (ast.Expression, error) {
	digits := strings.ReplaceAll(tok.Value, "_", "")
	base := 10
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			digits = digits[2:]
		}
	}

	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, p.errorAt(tok, "integer literal %s out of range", tok.Value)
		}
		return nil, p.errorAt(tok, "malformed integer literal %s", tok.Value)
	}
	return &ast.IntExpr{Position: tok.Pos, Value: value, Literal: tok.Value}, nil
}

func (p *parser) floatLiteral(tok token.Token) (ast.Expression, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(tok.Value, "_", ""), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, p.errorAt(tok, "float literal %s out of range", tok.Value)
		}
		return nil, p.errorAt(tok, "malformed float literal %s", tok.Value)
	}
	return &ast.FloatExpr{Position: tok.Pos, Value: value, Literal: tok.Value}, nil
}
