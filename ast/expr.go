package ast

import "github.com/dhamidi/snek/token"

type UnaryOp int

const (
	UnaryNot UnaryOp = iota
	UnaryPlus
	UnaryMinus
	UnaryBitNot
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNot:
		return "!"
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case UnaryBitNot:
		return "~"
	}
	return "Unknown"
}

type BinaryOp int

const (
	BinaryEQ BinaryOp = iota
	BinaryNE
	BinaryLT
	BinaryGT
	BinaryLE
	BinaryGE
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryPow
	BinaryShl
	BinaryShr
	BinaryAnd
	BinaryOr
)

var binaryOpNames = map[BinaryOp]string{
	BinaryEQ:  "==",
	BinaryNE:  "!=",
	BinaryLT:  "<",
	BinaryGT:  ">",
	BinaryLE:  "<=",
	BinaryGE:  ">=",
	BinaryAdd: "+",
	BinarySub: "-",
	BinaryMul: "*",
	BinaryDiv: "/",
	BinaryMod: "%",
	BinaryPow: "^",
	BinaryShl: "<<",
	BinaryShr: ">>",
	BinaryAnd: "&&",
	BinaryOr:  "||",
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "Unknown"
}

type BoolExpr struct {
	Position token.Position
	Value    bool
}

type NullExpr struct {
	Position token.Position
}

// IntExpr is an integer literal. Literal keeps the source spelling.
type IntExpr struct {
	Position token.Position
	Value    int64
	Literal  string
}

type FloatExpr struct {
	Position token.Position
	Value    float64
	Literal  string
}

// StrExpr is a string literal with escapes already decoded.
type StrExpr struct {
	Position token.Position
	Value    string
}

type IdentExpr struct {
	Position token.Position
	Name     string
}

type ListExpr struct {
	Position token.Position
	Elements []Expression
}

// RecordField is one `name: value` entry of a record literal.
type RecordField struct {
	Position token.Position
	Name     string
	Value    Expression
}

func (f *RecordField) Pos() token.Position { return f.Position }

type RecordExpr struct {
	Position token.Position
	Fields   []*RecordField
}

// ParenExpr keeps explicit grouping so positions stay on the opening paren.
type ParenExpr struct {
	Position   token.Position
	Expression Expression
}

type UnaryExpr struct {
	Position token.Position
	Op       UnaryOp
	Operand  Expression
}

type BinaryExpr struct {
	Position token.Position
	Op       BinaryOp
	Left     Expression
	Right    Expression
}

// CallExpr applies Callee to Args. Optional marks a `?.(...)` call.
type CallExpr struct {
	Position token.Position
	Callee   Expression
	Args     []Expression
	Optional bool
}

type FieldExpr struct {
	Position token.Position
	Record   Expression
	Field    string
	Optional bool
}

type SubscriptExpr struct {
	Position token.Position
	Record   Expression
	Index    Expression
	Optional bool
}

func (e *BoolExpr) Pos() token.Position      { return e.Position }
func (e *NullExpr) Pos() token.Position      { return e.Position }
func (e *IntExpr) Pos() token.Position       { return e.Position }
func (e *FloatExpr) Pos() token.Position     { return e.Position }
func (e *StrExpr) Pos() token.Position       { return e.Position }
func (e *IdentExpr) Pos() token.Position     { return e.Position }
func (e *ListExpr) Pos() token.Position      { return e.Position }
func (e *RecordExpr) Pos() token.Position    { return e.Position }
func (e *ParenExpr) Pos() token.Position     { return e.Position }
func (e *UnaryExpr) Pos() token.Position     { return e.Position }
func (e *BinaryExpr) Pos() token.Position    { return e.Position }
func (e *CallExpr) Pos() token.Position      { return e.Position }
func (e *FieldExpr) Pos() token.Position     { return e.Position }
func (e *SubscriptExpr) Pos() token.Position { return e.Position }

func (e *BoolExpr) Kind() ExpressionKind      { return KindBoolExpr }
func (e *NullExpr) Kind() ExpressionKind      { return KindNullExpr }
func (e *IntExpr) Kind() ExpressionKind       { return KindIntExpr }
func (e *FloatExpr) Kind() ExpressionKind     { return KindFloatExpr }
func (e *StrExpr) Kind() ExpressionKind       { return KindStrExpr }
func (e *IdentExpr) Kind() ExpressionKind     { return KindIdentExpr }
func (e *ListExpr) Kind() ExpressionKind      { return KindListExpr }
func (e *RecordExpr) Kind() ExpressionKind    { return KindRecordExpr }
func (e *ParenExpr) Kind() ExpressionKind     { return KindParenExpr }
func (e *UnaryExpr) Kind() ExpressionKind     { return KindUnaryExpr }
func (e *BinaryExpr) Kind() ExpressionKind    { return KindBinaryExpr }
func (e *CallExpr) Kind() ExpressionKind      { return KindCallExpr }
func (e *FieldExpr) Kind() ExpressionKind     { return KindFieldExpr }
func (e *SubscriptExpr) Kind() ExpressionKind { return KindSubscriptExpr }

func (*BoolExpr) expressionNode()      {}
func (*NullExpr) expressionNode()      {}
func (*IntExpr) expressionNode()       {}
func (*FloatExpr) expressionNode()     {}
func (*StrExpr) expressionNode()       {}
func (*IdentExpr) expressionNode()     {}
func (*ListExpr) expressionNode()      {}
func (*RecordExpr) expressionNode()    {}
func (*ParenExpr) expressionNode()     {}
func (*UnaryExpr) expressionNode()     {}
func (*BinaryExpr) expressionNode()    {}
func (*CallExpr) expressionNode()      {}
func (*FieldExpr) expressionNode()     {}
func (*SubscriptExpr) expressionNode() {}
