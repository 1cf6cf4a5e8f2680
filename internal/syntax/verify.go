package syntax

import (
	"fmt"
	"strings"
)

// Verify checks the structural integrity of a program: the invariants
// the parser establishes and every pass must preserve.
// It returns an error describing all violations found, or nil if valid.
func Verify(p *Program) error {
	var errs []string

	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if p == nil {
		return fmt.Errorf("AST verification failed:\n  program is nil")
	}

	// 1. Program name is an identifier
	if !IsIdentifier(p.Name) {
		add("program name %q is not an identifier", p.Name)
	}

	// 2. Body exists
	if p.Body == nil {
		add("program %s: body is nil", p.Name)
	} else {
		verifyBlock(p.Body, "program "+p.Name, add)
	}

	// 3. Context keys agree with declarations and are never primitive
	if p.Context == nil {
		add("program %s: context is nil", p.Name)
		return combineErrors(errs)
	}
	if len(p.Context.order) != len(p.Context.elems) {
		add("context has %d declarations but %d keys", len(p.Context.order), len(p.Context.elems))
	}
	for _, inst := range p.Context.order {
		where := "instruction " + inst.Name
		if p.Context.elems[inst.Name] != inst {
			add("%s: context key does not refer to the declaration", where)
		}
		if !IsIdentifier(inst.Name) {
			add("%s: name is not an identifier", where)
		}
		if IsPrimitive(inst.Name) {
			add("%s: name of primitive instruction", where)
		}
		if inst.Body == nil {
			add("%s: body is nil", where)
			continue
		}
		verifyBlock(inst.Body, where, add)
	}

	return combineErrors(errs)
}

func verifyBlock(b *Block, where string, add func(string, ...interface{})) {
	for i, s := range b.Stmts {
		if isNil(s) {
			add("%s: statement %d is nil", where, i)
			continue
		}
		verifyStmt(s, where, add)
	}
}

func verifyStmt(s Stmt, where string, add func(string, ...interface{})) {
	body := func(kind StmtKind, b *Block, part string) {
		if b == nil {
			add("%s: %s %s is nil", where, kind, part)
			return
		}
		verifyBlock(b, where, add)
	}

	switch s := s.(type) {
	case *Block:
		verifyBlock(s, where, add)

	case *IfStmt:
		if !s.Cond.IsValid() {
			add("%s: IF at %s has invalid condition", where, s.pos)
		}
		body(IF, s.Body, "body")

	case *IfElseStmt:
		if !s.Cond.IsValid() {
			add("%s: IF_ELSE at %s has invalid condition", where, s.pos)
		}
		body(IF_ELSE, s.Then, "then branch")
		body(IF_ELSE, s.Else, "else branch")

	case *WhileStmt:
		if !s.Cond.IsValid() {
			add("%s: WHILE at %s has invalid condition", where, s.pos)
		}
		body(WHILE, s.Body, "body")

	case *CallStmt:
		if !IsIdentifier(s.Name) {
			add("%s: CALL at %s names %q, not an identifier", where, s.pos, s.Name)
		}
	}
}

// combineErrors creates an error from a list of error strings, or returns nil.
func combineErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("AST verification failed:\n  %s", strings.Join(errs, "\n  "))
}
