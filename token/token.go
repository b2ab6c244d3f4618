// Package token defines the lexical vocabulary shared by the Snek lexer and
// parser: source positions, the token kind enumeration, and the token value.
package token

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether the position refers to an actual source location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

type Kind int

const (
	Invalid Kind = iota

	// Structural markers produced from line breaks and indentation
	NewLine
	Indent
	Dedent

	// Literals
	Ident
	Int
	Float
	Str

	// Keywords
	As
	Break
	Continue
	Else
	Export
	False
	From
	If
	Import
	Null
	Pass
	Return
	True
	Type
	While

	// Punctuation
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Colon
	Semicolon
	Dot
	OptionalDot
	Assign
	Arrow

	// Operators
	EQ
	NE
	LT
	GT
	LE
	GE
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	Shl
	Shr
	And
	Or
	Not
	BitNot
	BitAnd
	BitOr
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	NewLine:     "NewLine",
	Indent:      "Indent",
	Dedent:      "Dedent",
	Ident:       "Identifier",
	Int:         "IntLiteral",
	Float:       "FloatLiteral",
	Str:         "StringLiteral",
	As:          "as",
	Break:       "break",
	Continue:    "continue",
	Else:        "else",
	Export:      "export",
	False:       "false",
	From:        "from",
	If:          "if",
	Import:      "import",
	Null:        "null",
	Pass:        "pass",
	Return:      "return",
	True:        "true",
	Type:        "type",
	While:       "while",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	RBrace:      "}",
	Comma:       ",",
	Colon:       ":",
	Semicolon:   ";",
	Dot:         ".",
	OptionalDot: "?.",
	Assign:      "=",
	Arrow:       "->",
	EQ:          "==",
	NE:          "!=",
	LT:          "<",
	GT:          ">",
	LE:          "<=",
	GE:          ">=",
	Add:         "+",
	Sub:         "-",
	Mul:         "*",
	Div:         "/",
	Mod:         "%",
	Pow:         "^",
	Shl:         "<<",
	Shr:         ">>",
	And:         "&&",
	Or:          "||",
	Not:         "!",
	BitNot:      "~",
	BitAnd:      "&",
	BitOr:       "|",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= As && k <= While
}

// IsStructural reports whether k is a NewLine, Indent or Dedent marker.
func (k Kind) IsStructural() bool {
	return k == NewLine || k == Indent || k == Dedent
}

// Token is a classified lexical unit. Value carries the identifier text, the
// decoded contents of a string literal, or the source text of a number.
type Token struct {
	Kind  Kind
	Pos   Position
	Value string
	End   int // byte offset just past the token's source text
}

// Width is the length of the token's source text in bytes. Structural
// markers have no text and a width of zero.
func (t Token) Width() int {
	if t.End <= t.Pos.Offset {
		return 0
	}
	return t.End - t.Pos.Offset
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Int, Float:
		return fmt.Sprintf("%s `%s'", t.Kind, t.Value)
	case Str:
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	case NewLine, Indent, Dedent, Invalid:
		return t.Kind.String()
	}
	return "`" + t.Kind.String() + "'"
}

var keywords = map[string]Kind{
	"as":       As,
	"break":    Break,
	"continue": Continue,
	"else":     Else,
	"export":   Export,
	"false":    False,
	"from":     From,
	"if":       If,
	"import":   Import,
	"null":     Null,
	"pass":     Pass,
	"return":   Return,
	"true":     True,
	"type":     Type,
	"while":    While,
}

// Lookup classifies ident as a keyword kind, or Ident when it is not reserved.
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	return words
}
