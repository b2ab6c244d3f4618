package format

import (
	"fmt"

	"github.com/dhamidi/snek/ast"
	"github.com/dhamidi/snek/token"
)

type Option func(*converter)

// WithPositions includes a "position" field in every converted node.
func WithPositions() Option {
	return func(c *converter) {
		c.positions = true
	}
}

type converter struct {
	positions bool
}

func newConverter(opts []Option) *converter {
	c := &converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Program converts the top-level statements of a parse.
func Program(stmts []ast.Statement, opts ...Option) *Object {
	c := newConverter(opts)
	return NewObject().
		Set("kind", "Program").
		Set("statements", c.statements(stmts))
}

// Node converts a single statement, expression, type, import specifier or
// record field. Nodes from outside the ast package become an "Unknown"
// object naming their Go type.
func Node(n ast.Node, opts ...Option) *Object {
	return newConverter(opts).node(n)
}

func (c *converter) node(n ast.Node) *Object {
	switch n := n.(type) {
	case ast.Statement:
		return c.statement(n)
	case ast.Expression:
		return c.expression(n)
	case ast.Type:
		return c.typ(n)
	case ast.ImportSpecifier:
		return c.specifier(n)
	case *ast.RecordField:
		return c.recordField(n)
	case *ast.RecordTypeField:
		return c.recordTypeField(n)
	}
	return NewObject().Set("kind", "Unknown").Set("type", fmt.Sprintf("%T", n))
}

func (c *converter) header(kind fmt.Stringer, pos token.Position) *Object {
	obj := NewObject().Set("kind", kind.String())
	if c.positions {
		obj.Set("position", position(pos))
	}
	return obj
}

func position(pos token.Position) *Object {
	obj := NewObject()
	if pos.File != "" {
		obj.Set("file", pos.File)
	}
	return obj.
		Set("line", pos.Line).
		Set("column", pos.Column).
		Set("offset", pos.Offset)
}

func (c *converter) statements(stmts []ast.Statement) []*Object {
	out := make([]*Object, len(stmts))
	for i, s := range stmts {
		out[i] = c.statement(s)
	}
	return out
}

func (c *converter) expressions(exprs []ast.Expression) []*Object {
	out := make([]*Object, len(exprs))
	for i, e := range exprs {
		out[i] = c.expression(e)
	}
	return out
}

func (c *converter) types(types []ast.Type) []*Object {
	out := make([]*Object, len(types))
	for i, t := range types {
		out[i] = c.typ(t)
	}
	return out
}

func (c *converter) optionalStatement(s ast.Statement) any {
	if s == nil {
		return nil
	}
	return c.statement(s)
}

func (c *converter) statement(s ast.Statement) *Object {
	obj := c.header(s.Kind(), s.Pos())
	switch s := s.(type) {
	case *ast.BlockStmt:
		obj.Set("statements", c.statements(s.Statements))
	case *ast.BreakStmt, *ast.ContinueStmt, *ast.PassStmt:
	case *ast.ExprStmt:
		obj.Set("expression", c.expression(s.Expression))
	case *ast.AssignStmt:
		obj.Set("target", c.expression(s.Target)).
			Set("value", c.expression(s.Value))
	case *ast.IfStmt:
		obj.Set("condition", c.expression(s.Condition)).
			Set("thenStatement", c.statement(s.Then)).
			Set("elseStatement", c.optionalStatement(s.Else))
	case *ast.WhileStmt:
		obj.Set("condition", c.expression(s.Condition)).
			Set("statement", c.statement(s.Body))
	case *ast.ReturnStmt:
		var value any
		if s.Value != nil {
			value = c.expression(s.Value)
		}
		obj.Set("valueExpression", value)
	case *ast.ImportStmt:
		specs := make([]*Object, len(s.Specifiers))
		for i, spec := range s.Specifiers {
			specs[i] = c.specifier(spec)
		}
		obj.Set("path", s.Path).Set("specifiers", specs)
	case *ast.ExportNameStmt:
		obj.Set("name", s.Name)
	case *ast.ExportExprStmt:
		obj.Set("name", s.Name).Set("expression", c.expression(s.Expression))
	case *ast.ExportTypeStmt:
		obj.Set("name", s.Name).Set("type", c.typ(s.Type))
	case *ast.TypeStmt:
		obj.Set("name", s.Name).Set("type", c.typ(s.Type))
	}
	return obj
}

func (c *converter) specifier(s ast.ImportSpecifier) *Object {
	obj := c.header(s.Kind(), s.Pos())
	switch s := s.(type) {
	case *ast.NamedSpecifier:
		obj.Set("name", s.Name)
		if s.Alias != "" {
			obj.Set("alias", s.Alias)
		}
	case *ast.StarSpecifier:
		obj.Set("name", s.Name)
	}
	return obj
}

func (c *converter) expression(e ast.Expression) *Object {
	obj := c.header(e.Kind(), e.Pos())
	switch e := e.(type) {
	case *ast.BoolExpr:
		obj.Set("value", e.Value)
	case *ast.NullExpr:
	case *ast.IntExpr:
		obj.Set("value", e.Value).Set("literal", e.Literal)
	case *ast.FloatExpr:
		obj.Set("value", e.Value).Set("literal", e.Literal)
	case *ast.StrExpr:
		obj.Set("value", e.Value)
	case *ast.IdentExpr:
		obj.Set("name", e.Name)
	case *ast.ListExpr:
		obj.Set("elements", c.expressions(e.Elements))
	case *ast.RecordExpr:
		fields := make([]*Object, len(e.Fields))
		for i, f := range e.Fields {
			fields[i] = c.recordField(f)
		}
		obj.Set("fields", fields)
	case *ast.ParenExpr:
		obj.Set("expression", c.expression(e.Expression))
	case *ast.UnaryExpr:
		obj.Set("unaryKind", e.Op.String()).
			Set("operand", c.expression(e.Operand))
	case *ast.BinaryExpr:
		obj.Set("binaryKind", e.Op.String()).
			Set("leftOperand", c.expression(e.Left)).
			Set("rightOperand", c.expression(e.Right))
	case *ast.CallExpr:
		obj.Set("callee", c.expression(e.Callee)).
			Set("arguments", c.expressions(e.Args)).
			Set("optional", e.Optional)
	case *ast.FieldExpr:
		obj.Set("record", c.expression(e.Record)).
			Set("field", e.Field).
			Set("optional", e.Optional)
	case *ast.SubscriptExpr:
		obj.Set("record", c.expression(e.Record)).
			Set("field", c.expression(e.Index)).
			Set("optional", e.Optional)
	}
	return obj
}

func (c *converter) typ(t ast.Type) *Object {
	obj := c.header(t.Kind(), t.Pos())
	switch t := t.(type) {
	case *ast.BuiltinType:
		obj.Set("builtinKind", t.Builtin.String())
	case *ast.NamedType:
		obj.Set("name", t.Name)
	case *ast.StringType:
		obj.Set("value", t.Value)
	case *ast.ListType:
		obj.Set("elementType", c.typ(t.Element))
	case *ast.TupleType:
		obj.Set("types", c.types(t.Types))
	case *ast.UnionType:
		obj.Set("types", c.types(t.Types))
	case *ast.IntersectionType:
		obj.Set("types", c.types(t.Types))
	case *ast.FunctionType:
		var result any
		if t.Result != nil {
			result = c.typ(t.Result)
		}
		obj.Set("parameters", c.types(t.Params)).Set("returnType", result)
	case *ast.RecordType:
		fields := make([]*Object, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = c.recordTypeField(f)
		}
		obj.Set("fields", fields)
	}
	return obj
}

// Record fields carry no kind of their own; they only appear inside a
// Record expression or type.
func (c *converter) recordField(f *ast.RecordField) *Object {
	field := NewObject().Set("name", f.Name)
	if c.positions {
		field.Set("position", position(f.Position))
	}
	return field.Set("value", c.expression(f.Value))
}

func (c *converter) recordTypeField(f *ast.RecordTypeField) *Object {
	field := NewObject().Set("name", f.Name)
	if c.positions {
		field.Set("position", position(f.Position))
	}
	return field.Set("type", c.typ(f.Type))
}
