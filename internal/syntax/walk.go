package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order: a program visits its
// instructions in declaration order before its body.
func Walk(node Node, v Visitor) {
	if isNil(node) || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		if n.Context != nil {
			for _, inst := range n.Context.Instructions() {
				Walk(inst, v)
			}
		}
		Walk(n.Body, v)

	case *Instruction:
		Walk(n.Body, v)

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *IfStmt:
		Walk(n.Body, v)

	case *IfElseStmt:
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *WhileStmt:
		Walk(n.Body, v)

	case *CallStmt:
		// leaf
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// isNil reports whether node is nil or a typed nil pointer, which a nil
// *Block body stored in a Node interface would be.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Program:
		return n == nil
	case *Instruction:
		return n == nil
	case *Block:
		return n == nil
	case *IfStmt:
		return n == nil
	case *IfElseStmt:
		return n == nil
	case *WhileStmt:
		return n == nil
	case *CallStmt:
		return n == nil
	}
	return false
}
