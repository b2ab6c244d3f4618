package ast

// Inspect traverses the tree rooted at node in depth-first source order,
// calling fn for every node. Children of a node are skipped when fn returns
// false. Import specifiers and record fields are visited as nodes too.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *BlockStmt:
		for _, s := range n.Statements {
			Inspect(s, fn)
		}
	case *ExprStmt:
		Inspect(n.Expression, fn)
	case *AssignStmt:
		Inspect(n.Target, fn)
		Inspect(n.Value, fn)
	case *IfStmt:
		Inspect(n.Condition, fn)
		Inspect(n.Then, fn)
		if n.Else != nil {
			Inspect(n.Else, fn)
		}
	case *WhileStmt:
		Inspect(n.Condition, fn)
		Inspect(n.Body, fn)
	case *ReturnStmt:
		if n.Value != nil {
			Inspect(n.Value, fn)
		}
	case *ImportStmt:
		for _, s := range n.Specifiers {
			Inspect(s, fn)
		}
	case *ExportExprStmt:
		Inspect(n.Expression, fn)
	case *ExportTypeStmt:
		Inspect(n.Type, fn)
	case *TypeStmt:
		Inspect(n.Type, fn)

	case *ListExpr:
		for _, e := range n.Elements {
			Inspect(e, fn)
		}
	case *RecordExpr:
		for _, f := range n.Fields {
			Inspect(f, fn)
		}
	case *RecordField:
		Inspect(n.Value, fn)
	case *ParenExpr:
		Inspect(n.Expression, fn)
	case *UnaryExpr:
		Inspect(n.Operand, fn)
	case *BinaryExpr:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *CallExpr:
		Inspect(n.Callee, fn)
		for _, a := range n.Args {
			Inspect(a, fn)
		}
	case *FieldExpr:
		Inspect(n.Record, fn)
	case *SubscriptExpr:
		Inspect(n.Record, fn)
		Inspect(n.Index, fn)

	case *ListType:
		Inspect(n.Element, fn)
	case *TupleType:
		inspectTypes(n.Types, fn)
	case *UnionType:
		inspectTypes(n.Types, fn)
	case *IntersectionType:
		inspectTypes(n.Types, fn)
	case *FunctionType:
		inspectTypes(n.Params, fn)
		if n.Result != nil {
			Inspect(n.Result, fn)
		}
	case *RecordType:
		for _, f := range n.Fields {
			Inspect(f, fn)
		}
	case *RecordTypeField:
		Inspect(n.Type, fn)
	}
}

func inspectTypes(types []Type, fn func(Node) bool) {
	for _, t := range types {
		Inspect(t, fn)
	}
}
