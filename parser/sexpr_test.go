package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/snek/ast"
)

// sexpr renders a node as a compact s-expression so tree shapes can be
// compared as strings in tests.
func sexpr(node ast.Node) string {
	var b strings.Builder
	writeSexpr(&b, node)
	return b.String()
}

func writeList(b *strings.Builder, head string, nodes ...ast.Node) {
	b.WriteString("(")
	b.WriteString(head)
	for _, n := range nodes {
		b.WriteString(" ")
		writeSexpr(b, n)
	}
	b.WriteString(")")
}

func writeSexpr(b *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.BlockStmt:
		nodes := make([]ast.Node, len(n.Statements))
		for i, s := range n.Statements {
			nodes[i] = s
		}
		writeList(b, "block", nodes...)
	case *ast.PassStmt:
		b.WriteString("pass")
	case *ast.BreakStmt:
		b.WriteString("break")
	case *ast.ContinueStmt:
		b.WriteString("continue")
	case *ast.ExprStmt:
		writeSexpr(b, n.Expression)
	case *ast.AssignStmt:
		writeList(b, "=", n.Target, n.Value)
	case *ast.IfStmt:
		if n.Else == nil {
			writeList(b, "if", n.Condition, n.Then)
		} else {
			writeList(b, "if", n.Condition, n.Then, n.Else)
		}
	case *ast.WhileStmt:
		writeList(b, "while", n.Condition, n.Body)
	case *ast.ReturnStmt:
		if n.Value == nil {
			b.WriteString("(return)")
		} else {
			writeList(b, "return", n.Value)
		}
	case *ast.ImportStmt:
		fmt.Fprintf(b, "(import %q", n.Path)
		for _, s := range n.Specifiers {
			b.WriteString(" ")
			writeSexpr(b, s)
		}
		b.WriteString(")")
	case *ast.NamedSpecifier:
		b.WriteString(n.Name)
		if n.Alias != "" {
			b.WriteString(":" + n.Alias)
		}
	case *ast.StarSpecifier:
		b.WriteString("*" + n.Name)
	case *ast.ExportNameStmt:
		b.WriteString("(export " + n.Name + ")")
	case *ast.ExportExprStmt:
		writeList(b, "export "+n.Name, n.Expression)
	case *ast.ExportTypeStmt:
		writeList(b, "export-type "+n.Name, n.Type)
	case *ast.TypeStmt:
		writeList(b, "type "+n.Name, n.Type)

	case *ast.BoolExpr:
		fmt.Fprint(b, n.Value)
	case *ast.NullExpr:
		b.WriteString("null")
	case *ast.IntExpr:
		b.WriteString(n.Literal)
	case *ast.FloatExpr:
		b.WriteString(n.Literal)
	case *ast.StrExpr:
		fmt.Fprintf(b, "%q", n.Value)
	case *ast.IdentExpr:
		b.WriteString(n.Name)
	case *ast.ListExpr:
		b.WriteString("[")
		for i, e := range n.Elements {
			if i > 0 {
				b.WriteString(" ")
			}
			writeSexpr(b, e)
		}
		b.WriteString("]")
	case *ast.RecordExpr:
		b.WriteString("{")
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(f.Name + ":")
			writeSexpr(b, f.Value)
		}
		b.WriteString("}")
	case *ast.ParenExpr:
		writeList(b, "paren", n.Expression)
	case *ast.UnaryExpr:
		writeList(b, n.Op.String(), n.Operand)
	case *ast.BinaryExpr:
		writeList(b, n.Op.String(), n.Left, n.Right)
	case *ast.CallExpr:
		nodes := []ast.Node{n.Callee}
		for _, a := range n.Args {
			nodes = append(nodes, a)
		}
		writeList(b, optional(n.Optional)+"call", nodes...)
	case *ast.FieldExpr:
		writeList(b, optional(n.Optional)+"."+n.Field, n.Record)
	case *ast.SubscriptExpr:
		writeList(b, optional(n.Optional)+"index", n.Record, n.Index)

	case *ast.BuiltinType:
		b.WriteString(n.Builtin.String())
	case *ast.NamedType:
		b.WriteString(n.Name)
	case *ast.StringType:
		fmt.Fprintf(b, "%q", n.Value)
	case *ast.ListType:
		writeList(b, "list", n.Element)
	case *ast.TupleType:
		writeTypes(b, "[", n.Types, "]")
	case *ast.UnionType:
		writeTypes(b, "(| ", n.Types, ")")
	case *ast.IntersectionType:
		writeTypes(b, "(& ", n.Types, ")")
	case *ast.FunctionType:
		b.WriteString("(fn ")
		writeTypes(b, "[", n.Params, "]")
		if n.Result != nil {
			b.WriteString(" ")
			writeSexpr(b, n.Result)
		}
		b.WriteString(")")
	case *ast.RecordType:
		b.WriteString("{")
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(f.Name + ":")
			writeSexpr(b, f.Type)
		}
		b.WriteString("}")
	default:
		fmt.Fprintf(b, "<%T>", node)
	}
}

func writeTypes(b *strings.Builder, open string, types []ast.Type, close string) {
	b.WriteString(open)
	for i, t := range types {
		if i > 0 {
			b.WriteString(" ")
		}
		writeSexpr(b, t)
	}
	b.WriteString(close)
}

func optional(opt bool) string {
	if opt {
		return "?"
	}
	return ""
}
