// Package ast declares the syntax tree produced by the Snek parser.
//
// Statements, import specifiers, expressions and types are each a closed set
// of variants: the category interfaces carry an unexported marker method, and
// every variant reports a kind from that category's enumeration. Consumers
// dispatch with a type switch or on Kind().
//
// Nodes are built bottom-up by the parser and are not modified afterwards.
// Every node's position is that of its leftmost token.
package ast

import "github.com/dhamidi/snek/token"

type Node interface {
	Pos() token.Position
}

type Statement interface {
	Node
	Kind() StatementKind
	statementNode()
}

type ImportSpecifier interface {
	Node
	Kind() SpecifierKind
	specifierNode()
}

type Expression interface {
	Node
	Kind() ExpressionKind
	expressionNode()
}

type Type interface {
	Node
	Kind() TypeKind
	typeNode()
}

type StatementKind int

const (
	KindBlockStmt StatementKind = iota
	KindBreakStmt
	KindContinueStmt
	KindPassStmt
	KindExprStmt
	KindAssignStmt
	KindIfStmt
	KindWhileStmt
	KindReturnStmt
	KindImportStmt
	KindExportNameStmt
	KindExportExprStmt
	KindExportTypeStmt
	KindTypeStmt
)

var statementKindNames = map[StatementKind]string{
	KindBlockStmt:      "Block",
	KindBreakStmt:      "Break",
	KindContinueStmt:   "Continue",
	KindPassStmt:       "Pass",
	KindExprStmt:       "Expression",
	KindAssignStmt:     "Assign",
	KindIfStmt:         "If",
	KindWhileStmt:      "While",
	KindReturnStmt:     "Return",
	KindImportStmt:     "Import",
	KindExportNameStmt: "ExportName",
	KindExportExprStmt: "ExportExpression",
	KindExportTypeStmt: "ExportType",
	KindTypeStmt:       "Type",
}

func (k StatementKind) String() string {
	if name, ok := statementKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type SpecifierKind int

const (
	KindNamedSpecifier SpecifierKind = iota
	KindStarSpecifier
)

func (k SpecifierKind) String() string {
	switch k {
	case KindNamedSpecifier:
		return "Named"
	case KindStarSpecifier:
		return "Star"
	}
	return "Unknown"
}

type ExpressionKind int

const (
	KindBoolExpr ExpressionKind = iota
	KindNullExpr
	KindIntExpr
	KindFloatExpr
	KindStrExpr
	KindIdentExpr
	KindListExpr
	KindRecordExpr
	KindParenExpr
	KindUnaryExpr
	KindBinaryExpr
	KindCallExpr
	KindFieldExpr
	KindSubscriptExpr
)

var expressionKindNames = map[ExpressionKind]string{
	KindBoolExpr:      "Bool",
	KindNullExpr:      "Null",
	KindIntExpr:       "Int",
	KindFloatExpr:     "Float",
	KindStrExpr:       "Str",
	KindIdentExpr:     "Identifier",
	KindListExpr:      "List",
	KindRecordExpr:    "Record",
	KindParenExpr:     "Paren",
	KindUnaryExpr:     "Unary",
	KindBinaryExpr:    "Binary",
	KindCallExpr:      "Call",
	KindFieldExpr:     "Field",
	KindSubscriptExpr: "Subscript",
}

func (k ExpressionKind) String() string {
	if name, ok := expressionKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type TypeKind int

const (
	KindBuiltinType TypeKind = iota
	KindNamedType
	KindStringType
	KindListType
	KindTupleType
	KindUnionType
	KindIntersectionType
	KindFunctionType
	KindRecordType
)

var typeKindNames = map[TypeKind]string{
	KindBuiltinType:      "Builtin",
	KindNamedType:        "Named",
	KindStringType:       "String",
	KindListType:         "List",
	KindTupleType:        "Tuple",
	KindUnionType:        "Union",
	KindIntersectionType: "Intersection",
	KindFunctionType:     "Function",
	KindRecordType:       "Record",
}

func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}
