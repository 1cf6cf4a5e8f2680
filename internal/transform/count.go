package transform

import "github.com/you-not-fish/bl/internal/syntax"

// CountPrimitiveCalls returns the number of calls to primitive
// instructions in s. Calls to user-defined instructions count zero; their
// bodies are not followed. s is not modified.
func CountPrimitiveCalls(s syntax.Stmt) int {
	switch s := s.(type) {
	case *syntax.Block:
		if s == nil {
			return 0
		}
		n := 0
		for _, x := range s.Stmts {
			n += CountPrimitiveCalls(x)
		}
		return n

	case *syntax.IfStmt:
		return CountPrimitiveCalls(s.Body)

	case *syntax.IfElseStmt:
		return CountPrimitiveCalls(s.Then) + CountPrimitiveCalls(s.Else)

	case *syntax.WhileStmt:
		return CountPrimitiveCalls(s.Body)

	case *syntax.CallStmt:
		if syntax.IsPrimitive(s.Name) {
			return 1
		}
	}
	return 0
}
