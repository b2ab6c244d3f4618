package ast

import "github.com/dhamidi/snek/token"

// BuiltinKind enumerates the primitive type names known without declaration.
type BuiltinKind int

const (
	BuiltinAny BuiltinKind = iota
	BuiltinBool
	BuiltinFloat
	BuiltinInt
	BuiltinNum
	BuiltinStr
	BuiltinVoid
	BuiltinBin
)

var builtinNames = map[BuiltinKind]string{
	BuiltinAny:   "Any",
	BuiltinBool:  "Bool",
	BuiltinFloat: "Float",
	BuiltinInt:   "Int",
	BuiltinNum:   "Num",
	BuiltinStr:   "Str",
	BuiltinVoid:  "Void",
	BuiltinBin:   "Bin",
}

var builtinsByName map[string]BuiltinKind

func init() {
	builtinsByName = make(map[string]BuiltinKind, len(builtinNames))
	for kind, name := range builtinNames {
		builtinsByName[name] = kind
	}
}

func (k BuiltinKind) String() string {
	if name, ok := builtinNames[k]; ok {
		return name
	}
	return "Unknown"
}

// LookupBuiltin reports whether name is a builtin type name.
func LookupBuiltin(name string) (BuiltinKind, bool) {
	kind, ok := builtinsByName[name]
	return kind, ok
}

type BuiltinType struct {
	Position token.Position
	Builtin  BuiltinKind
}

// NamedType refers to a type declared elsewhere.
type NamedType struct {
	Position token.Position
	Name     string
}

// StringType is inhabited by the single string Value.
type StringType struct {
	Position token.Position
	Value    string
}

type ListType struct {
	Position token.Position
	Element  Type
}

type TupleType struct {
	Position token.Position
	Types    []Type
}

// UnionType and IntersectionType are flat: a chain `A | B | C` yields one
// node with three members.
type UnionType struct {
	Position token.Position
	Types    []Type
}

type IntersectionType struct {
	Position token.Position
	Types    []Type
}

// FunctionType is `(P1, P2) -> R`. Result is nil when the arrow is omitted.
type FunctionType struct {
	Position token.Position
	Params   []Type
	Result   Type
}

type RecordTypeField struct {
	Position token.Position
	Name     string
	Type     Type
}

func (f *RecordTypeField) Pos() token.Position { return f.Position }

type RecordType struct {
	Position token.Position
	Fields   []*RecordTypeField
}

func (t *BuiltinType) Pos() token.Position      { return t.Position }
func (t *NamedType) Pos() token.Position        { return t.Position }
func (t *StringType) Pos() token.Position       { return t.Position }
func (t *ListType) Pos() token.Position         { return t.Position }
func (t *TupleType) Pos() token.Position        { return t.Position }
func (t *UnionType) Pos() token.Position        { return t.Position }
func (t *IntersectionType) Pos() token.Position { return t.Position }
func (t *FunctionType) Pos() token.Position     { return t.Position }
func (t *RecordType) Pos() token.Position       { return t.Position }

func (t *BuiltinType) Kind() TypeKind      { return KindBuiltinType }
func (t *NamedType) Kind() TypeKind        { return KindNamedType }
func (t *StringType) Kind() TypeKind       { return KindStringType }
func (t *ListType) Kind() TypeKind         { return KindListType }
func (t *TupleType) Kind() TypeKind        { return KindTupleType }
func (t *UnionType) Kind() TypeKind        { return KindUnionType }
func (t *IntersectionType) Kind() TypeKind { return KindIntersectionType }
func (t *FunctionType) Kind() TypeKind     { return KindFunctionType }
func (t *RecordType) Kind() TypeKind       { return KindRecordType }

func (*BuiltinType) typeNode()      {}
func (*NamedType) typeNode()        {}
func (*StringType) typeNode()       {}
func (*ListType) typeNode()         {}
func (*TupleType) typeNode()        {}
func (*UnionType) typeNode()        {}
func (*IntersectionType) typeNode() {}
func (*FunctionType) typeNode()     {}
func (*RecordType) typeNode()       {}
