package ast

import "github.com/dhamidi/snek/token"

// BlockStmt is an indented sequence of statements.
type BlockStmt struct {
	Position   token.Position
	Statements []Statement
}

type BreakStmt struct {
	Position token.Position
}

type ContinueStmt struct {
	Position token.Position
}

type PassStmt struct {
	Position token.Position
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	Position   token.Position
	Expression Expression
}

// AssignStmt stores Value into Target, which is an identifier, field or
// subscript expression.
type AssignStmt struct {
	Position token.Position
	Target   Expression
	Value    Expression
}

// IfStmt is a conditional. Else is nil without an else branch, another
// *IfStmt for an `else if` chain, or the statement of the `else:` body.
type IfStmt struct {
	Position  token.Position
	Condition Expression
	Then      Statement
	Else      Statement
}

type WhileStmt struct {
	Position  token.Position
	Condition Expression
	Body      Statement
}

// ReturnStmt leaves the enclosing function. Value is nil for a bare return.
type ReturnStmt struct {
	Position token.Position
	Value    Expression
}

// ImportStmt binds names from the module at Path.
//
//	import a, b as c, * as d from "path"
type ImportStmt struct {
	Position   token.Position
	Path       string
	Specifiers []ImportSpecifier
}

// NamedSpecifier imports Name, optionally bound locally as Alias.
type NamedSpecifier struct {
	Position token.Position
	Name     string
	Alias    string
}

// LocalName returns the name the specifier binds in the importing module.
func (s *NamedSpecifier) LocalName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// StarSpecifier binds the whole module namespace to Name.
type StarSpecifier struct {
	Position token.Position
	Name     string
}

// ExportNameStmt exports an existing binding: export name
type ExportNameStmt struct {
	Position token.Position
	Name     string
}

// ExportExprStmt declares and exports a binding: export name = expr
type ExportExprStmt struct {
	Position   token.Position
	Name       string
	Expression Expression
}

// ExportTypeStmt declares and exports a type alias: export type Name = T
type ExportTypeStmt struct {
	Position token.Position
	Name     string
	Type     Type
}

// TypeStmt declares a type alias: type Name = T
type TypeStmt struct {
	Position token.Position
	Name     string
	Type     Type
}

func (s *BlockStmt) Pos() token.Position      { return s.Position }
func (s *BreakStmt) Pos() token.Position      { return s.Position }
func (s *ContinueStmt) Pos() token.Position   { return s.Position }
func (s *PassStmt) Pos() token.Position       { return s.Position }
func (s *ExprStmt) Pos() token.Position       { return s.Position }
func (s *AssignStmt) Pos() token.Position     { return s.Position }
func (s *IfStmt) Pos() token.Position         { return s.Position }
func (s *WhileStmt) Pos() token.Position      { return s.Position }
func (s *ReturnStmt) Pos() token.Position     { return s.Position }
func (s *ImportStmt) Pos() token.Position     { return s.Position }
func (s *ExportNameStmt) Pos() token.Position { return s.Position }
func (s *ExportExprStmt) Pos() token.Position { return s.Position }
func (s *ExportTypeStmt) Pos() token.Position { return s.Position }
func (s *TypeStmt) Pos() token.Position       { return s.Position }

func (s *BlockStmt) Kind() StatementKind      { return KindBlockStmt }
func (s *BreakStmt) Kind() StatementKind      { return KindBreakStmt }
func (s *ContinueStmt) Kind() StatementKind   { return KindContinueStmt }
func (s *PassStmt) Kind() StatementKind       { return KindPassStmt }
func (s *ExprStmt) Kind() StatementKind       { return KindExprStmt }
func (s *AssignStmt) Kind() StatementKind     { return KindAssignStmt }
func (s *IfStmt) Kind() StatementKind         { return KindIfStmt }
func (s *WhileStmt) Kind() StatementKind      { return KindWhileStmt }
func (s *ReturnStmt) Kind() StatementKind     { return KindReturnStmt }
func (s *ImportStmt) Kind() StatementKind     { return KindImportStmt }
func (s *ExportNameStmt) Kind() StatementKind { return KindExportNameStmt }
func (s *ExportExprStmt) Kind() StatementKind { return KindExportExprStmt }
func (s *ExportTypeStmt) Kind() StatementKind { return KindExportTypeStmt }
func (s *TypeStmt) Kind() StatementKind       { return KindTypeStmt }

func (*BlockStmt) statementNode()      {}
func (*BreakStmt) statementNode()      {}
func (*ContinueStmt) statementNode()   {}
func (*PassStmt) statementNode()       {}
func (*ExprStmt) statementNode()       {}
func (*AssignStmt) statementNode()     {}
func (*IfStmt) statementNode()         {}
func (*WhileStmt) statementNode()      {}
func (*ReturnStmt) statementNode()     {}
func (*ImportStmt) statementNode()     {}
func (*ExportNameStmt) statementNode() {}
func (*ExportExprStmt) statementNode() {}
func (*ExportTypeStmt) statementNode() {}
func (*TypeStmt) statementNode()       {}

func (s *NamedSpecifier) Pos() token.Position { return s.Position }
func (s *StarSpecifier) Pos() token.Position  { return s.Position }

func (s *NamedSpecifier) Kind() SpecifierKind { return KindNamedSpecifier }
func (s *StarSpecifier) Kind() SpecifierKind  { return KindStarSpecifier }

func (*NamedSpecifier) specifierNode() {}
func (*StarSpecifier) specifierNode()  {}
