package transform

import "github.com/you-not-fish/bl/internal/syntax"

// CallStat summarizes the calls made by one unit of a program: an
// instruction body or the main body.
type CallStat struct {
	Unit      string // instruction name, or the program name for the body
	Main      bool   // unit is the program body
	Primitive int    // calls to primitive instructions
	User      int    // calls to other names
}

// Total returns the number of calls in the unit.
func (s CallStat) Total() int { return s.Primitive + s.User }

// Stats returns one CallStat per instruction in declaration order,
// followed by the program body.
func Stats(p *syntax.Program) []CallStat {
	stats := make([]CallStat, 0, p.Context.Len()+1)
	for _, inst := range p.Context.Instructions() {
		stats = append(stats, unitStat(inst.Name, false, inst.Body))
	}
	return append(stats, unitStat(p.Name, true, p.Body))
}

func unitStat(name string, main bool, body *syntax.Block) CallStat {
	st := CallStat{Unit: name, Main: main, Primitive: CountPrimitiveCalls(body)}
	syntax.Inspect(body, func(n syntax.Node) bool {
		if c, ok := n.(*syntax.CallStmt); ok && !syntax.IsPrimitive(c.Name) {
			st.User++
		}
		return true
	})
	return st
}
