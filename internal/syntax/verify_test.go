package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyParsedProgram(t *testing.T) {
	assert.NoError(t, Verify(parseProgram(t, sampleProgram)))
}

func TestVerifyViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Program)
		want   string
	}{
		{"nil_body", func(p *Program) { p.Body = nil }, "program Sample: body is nil"},
		{"bad_name", func(p *Program) { p.Name = "BEGIN" }, `program name "BEGIN" is not an identifier`},
		{"nil_stmt", func(p *Program) { p.Body.Stmts[0] = nil }, "statement 0 is nil"},
		{"nil_typed_stmt", func(p *Program) { p.Body.Stmts[1] = (*CallStmt)(nil) }, "statement 1 is nil"},
		{
			"invalid_condition",
			func(p *Program) { p.Body.Stmts[3].(*IfStmt).Cond = CondInvalid },
			"has invalid condition",
		},
		{
			"nil_else",
			func(p *Program) { p.Body.Stmts[2].(*IfElseStmt).Else = nil },
			"IF_ELSE else branch is nil",
		},
		{
			"bad_call",
			func(p *Program) {
				loop := p.Context.Lookup("findWall").Body.Stmts[0].(*WhileStmt)
				loop.Body.Stmts[0] = NewCall("END")
			},
			`instruction findWall: CALL at - names "END"`,
		},
		{
			"stale_key",
			func(p *Program) { p.Context.Lookup("findWall").Name = "lostWall" },
			"instruction lostWall: context key does not refer to the declaration",
		},
		{
			"primitive_instruction",
			func(p *Program) {
				inst := NewInstruction("skip", NewBlock())
				p.Context.elems[inst.Name] = inst
				p.Context.order = append(p.Context.order, inst)
			},
			"instruction skip: name of primitive instruction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parseProgram(t, sampleProgram)
			tt.mutate(p)
			err := Verify(p)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "AST verification failed:"))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerifyNil(t *testing.T) {
	assert.Error(t, Verify(nil))
}

func TestVerifyBuiltProgram(t *testing.T) {
	p := NewProgram("Built")
	require.NoError(t, p.Context.Insert(NewInstruction("step", NewBlock(NewCall("move")))))
	p.Body = NewBlock(NewWhile(True, NewBlock(NewCall("step"))))
	assert.NoError(t, Verify(p))
}
