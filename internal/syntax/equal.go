package syntax

// Clone returns a deep copy of p. Positions are preserved.
func Clone(p *Program) *Program {
	if p == nil {
		return nil
	}
	q := &Program{node: p.node, Name: p.Name, Context: NewContext(), Body: cloneBlock(p.Body)}
	if p.Context != nil {
		for _, inst := range p.Context.Instructions() {
			c := &Instruction{node: inst.node, Name: inst.Name, Body: cloneBlock(inst.Body)}
			q.Context.elems[c.Name] = c
			q.Context.order = append(q.Context.order, c)
		}
	}
	return q
}

// CloneStmt returns a deep copy of s.
func CloneStmt(s Stmt) Stmt {
	switch s := s.(type) {
	case *Block:
		return cloneBlock(s)
	case *IfStmt:
		c := *s
		c.Body = cloneBlock(s.Body)
		return &c
	case *IfElseStmt:
		c := *s
		c.Then = cloneBlock(s.Then)
		c.Else = cloneBlock(s.Else)
		return &c
	case *WhileStmt:
		c := *s
		c.Body = cloneBlock(s.Body)
		return &c
	case *CallStmt:
		c := *s
		return &c
	}
	return nil
}

func cloneBlock(b *Block) *Block {
	if b == nil {
		return nil
	}
	c := &Block{stmt: b.stmt, Stmts: make([]Stmt, len(b.Stmts))}
	for i, s := range b.Stmts {
		c.Stmts[i] = CloneStmt(s)
	}
	return c
}

// EqualProgram reports whether a and b are structurally equal: same
// name, same instructions in the same order with equal bodies, and equal
// main bodies. Positions are ignored.
func EqualProgram(a, b *Program) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || !Equal(a.Body, b.Body) {
		return false
	}
	ai, bi := a.Context.Instructions(), b.Context.Instructions()
	if len(ai) != len(bi) {
		return false
	}
	for i := range ai {
		if ai[i].Name != bi[i].Name || !Equal(ai[i].Body, bi[i].Body) {
			return false
		}
	}
	return true
}

// Equal reports whether two statements are structurally equal, ignoring
// positions.
func Equal(a, b Stmt) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	switch a := a.(type) {
	case *Block:
		b, ok := b.(*Block)
		if !ok || len(a.Stmts) != len(b.Stmts) {
			return false
		}
		for i := range a.Stmts {
			if !Equal(a.Stmts[i], b.Stmts[i]) {
				return false
			}
		}
		return true

	case *IfStmt:
		b, ok := b.(*IfStmt)
		return ok && a.Cond == b.Cond && Equal(a.Body, b.Body)

	case *IfElseStmt:
		b, ok := b.(*IfElseStmt)
		return ok && a.Cond == b.Cond && Equal(a.Then, b.Then) && Equal(a.Else, b.Else)

	case *WhileStmt:
		b, ok := b.(*WhileStmt)
		return ok && a.Cond == b.Cond && Equal(a.Body, b.Body)

	case *CallStmt:
		b, ok := b.(*CallStmt)
		return ok && a.Name == b.Name
	}
	return false
}
