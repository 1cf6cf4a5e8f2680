package transform

import "github.com/you-not-fish/bl/internal/syntax"

// SimplifyIfElse rewrites, in place, every IF_ELSE in s whose condition
// is negated into the positive condition with its branches swapped.
// Children are simplified before their parent. It returns the number of
// statements rewritten; a second run always returns 0.
func SimplifyIfElse(s syntax.Stmt) int {
	switch s := s.(type) {
	case *syntax.Block:
		if s == nil {
			return 0
		}
		n := 0
		for _, x := range s.Stmts {
			n += SimplifyIfElse(x)
		}
		return n

	case *syntax.IfStmt:
		return SimplifyIfElse(s.Body)

	case *syntax.IfElseStmt:
		n := SimplifyIfElse(s.Then) + SimplifyIfElse(s.Else)
		if s.Cond.IsNegated() {
			s.Cond = s.Cond.Positive()
			s.Then, s.Else = s.Else, s.Then
			n++
		}
		return n

	case *syntax.WhileStmt:
		return SimplifyIfElse(s.Body)
	}
	return 0
}

// SimplifyProgram applies SimplifyIfElse to every instruction body and
// to the program body.
func SimplifyProgram(p *syntax.Program) int {
	n := 0
	for _, inst := range p.Context.Instructions() {
		n += SimplifyIfElse(inst.Body)
	}
	return n + SimplifyIfElse(p.Body)
}
