package transform

import (
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/you-not-fish/bl/internal/syntax"
)

// calledNames returns the set of non-primitive names called anywhere in p.
func calledNames(p *syntax.Program) mapset.Set {
	called := mapset.NewThreadUnsafeSet()
	syntax.Inspect(p, func(n syntax.Node) bool {
		if c, ok := n.(*syntax.CallStmt); ok && !syntax.IsPrimitive(c.Name) {
			called.Add(c.Name)
		}
		return true
	})
	return called
}

func declaredNames(p *syntax.Program) mapset.Set {
	declared := mapset.NewThreadUnsafeSet()
	for _, name := range p.Context.Names() {
		declared.Add(name)
	}
	return declared
}

// Undefined returns, sorted, the names that are called in p but are
// neither primitive nor declared. The parser accepts such calls since
// instructions may be declared after their first use.
func Undefined(p *syntax.Program) []string {
	return sortedStrings(calledNames(p).Difference(declaredNames(p)))
}

// Unused returns, sorted, the declared instructions that are never
// called. A call from an instruction's own body counts.
func Unused(p *syntax.Program) []string {
	return sortedStrings(declaredNames(p).Difference(calledNames(p)))
}

func sortedStrings(s mapset.Set) []string {
	names := make([]string, 0, s.Cardinality())
	for _, x := range s.ToSlice() {
		names = append(names, x.(string))
	}
	sort.Strings(names)
	return names
}
