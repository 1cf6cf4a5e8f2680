package syntax

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkOrder(t *testing.T) {
	p := parseProgram(t, sampleProgram)

	var calls []string
	Inspect(p, func(n Node) bool {
		if c, ok := n.(*CallStmt); ok {
			calls = append(calls, c.Name)
		}
		return true
	})
	want := []string{"turnleft", "turnleft", "move", "infect", "findWall", "move", "turnLeftTwice", "skip"}
	assert.Equal(t, want, calls)
}

func TestWalkPrune(t *testing.T) {
	p := parseProgram(t, sampleProgram)

	var kinds []StmtKind
	Inspect(p.Body, func(n Node) bool {
		s, ok := n.(Stmt)
		if !ok {
			return true
		}
		kinds = append(kinds, s.Kind())
		return s.Kind() == BLOCK
	})
	assert.Equal(t, []StmtKind{BLOCK, CALL, CALL, IF_ELSE, IF}, kinds)
}

func TestCloneIsDeep(t *testing.T) {
	p := parseProgram(t, sampleProgram)
	q := Clone(p)

	require.True(t, EqualProgram(p, q))
	assert.Equal(t, p.Body.Stmts[2].Pos(), q.Body.Stmts[2].Pos())

	q.Body.Stmts[2].(*IfElseStmt).Cond = NextIsWall
	q.Context.Lookup("findWall").Body.Stmts = nil
	require.NoError(t, q.Context.Rekey("turnLeftTwice", "uTurn"))

	assert.Equal(t, NextIsNotWall, p.Body.Stmts[2].(*IfElseStmt).Cond)
	assert.Len(t, p.Context.Lookup("findWall").Body.Stmts, 1)
	assert.True(t, p.Context.Has("turnLeftTwice"))
	assert.False(t, EqualProgram(p, q))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Stmt
		want bool
	}{
		{"calls", NewCall("move"), NewCall("move"), true},
		{"call_names", NewCall("move"), NewCall("skip"), false},
		{"kinds", NewIf(True, NewBlock()), NewWhile(True, NewBlock()), false},
		{"conds", NewIf(True, NewBlock()), NewIf(Random, NewBlock()), false},
		{
			"branches",
			NewIfElse(True, NewBlock(NewCall("a")), NewBlock()),
			NewIfElse(True, NewBlock(), NewBlock(NewCall("a"))),
			false,
		},
		{"lengths", NewBlock(NewCall("a")), NewBlock(NewCall("a"), NewCall("a")), false},
		{"nil", nil, (*Block)(nil), true},
		{"nil_vs_empty", nil, NewBlock(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestFprint(t *testing.T) {
	p := parseProgram(t, "PROGRAM P IS\nINSTRUCTION a IS move END a\nBEGIN\nIF true THEN a ELSE skip END IF\nEND P")

	var b strings.Builder
	Fprint(&b, p)
	want := `Program test.bl:1:1 "P"
  Context:
    Instruction test.bl:2:1 "a"
      BLOCK test.bl:2:18
        CALL test.bl:2:18 "move"
  Body:
    BLOCK test.bl:4:1
      IF_ELSE test.bl:4:1 TRUE
        Then:
          BLOCK test.bl:4:14
            CALL test.bl:4:14 "a"
        Else:
          BLOCK test.bl:4:21
            CALL test.bl:4:21 "skip"
`
	assert.Equal(t, want, b.String())
}

func TestFprintJSON(t *testing.T) {
	p := parseProgram(t, "PROGRAM P IS INSTRUCTION a IS END a BEGIN WHILE next-is-wall DO turnleft END WHILE END P")

	var b strings.Builder
	require.NoError(t, FprintJSON(&b, p))

	var got struct {
		Type    string `json:"type"`
		Name    string `json:"name"`
		Context []struct {
			Name string `json:"name"`
		} `json:"context"`
		Body struct {
			Type  string `json:"type"`
			Stmts []struct {
				Type string `json:"type"`
				Cond string `json:"cond"`
			} `json:"stmts"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(b.String()), &got))

	assert.Equal(t, "Program", got.Type)
	assert.Equal(t, "P", got.Name)
	require.Len(t, got.Context, 1)
	assert.Equal(t, "a", got.Context[0].Name)
	assert.Equal(t, "BLOCK", got.Body.Type)
	require.Len(t, got.Body.Stmts, 1)
	assert.Equal(t, "WHILE", got.Body.Stmts[0].Type)
	assert.Equal(t, "NEXT_IS_WALL", got.Body.Stmts[0].Cond)
}
