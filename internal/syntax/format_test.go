package syntax

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFormatted = `PROGRAM Sample IS

  INSTRUCTION turnLeftTwice IS
    turnleft
    turnleft
  END turnLeftTwice

  INSTRUCTION findWall IS
    WHILE next-is-not-wall DO
      move
    END WHILE
  END findWall

BEGIN
  infect
  findWall
  IF next-is-not-wall THEN
    move
  ELSE
    turnLeftTwice
  END IF
  IF random THEN
    skip
  END IF
END Sample
`

func TestFormat(t *testing.T) {
	p := parseProgram(t, sampleProgram)
	got := String(p)
	if diff := cmp.Diff(sampleFormatted, got); diff != "" {
		t.Errorf("Format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	sources := []string{
		sampleProgram,
		"PROGRAM Empty IS BEGIN END Empty",
		"PROGRAM P IS INSTRUCTION a IS END a BEGIN a IF true skip END IF END P",
		wrap("WHILE next-is-enemy WHILE random IF next-is-not-empty THEN skip ELSE infect END IF END WHILE END WHILE"),
	}

	// Ignore positions and the context's internal index.
	opts := cmp.Options{
		cmpopts.IgnoreUnexported(Program{}, Instruction{}, Block{}, IfStmt{}, IfElseStmt{}, WhileStmt{}, CallStmt{}),
		cmp.Comparer(func(a, b *Context) bool {
			return cmp.Equal(a.Names(), b.Names())
		}),
	}

	for _, src := range sources {
		first := parseProgram(t, src)
		text := String(first)
		second := parseProgram(t, text)

		assert.True(t, EqualProgram(first, second), "round trip changed the tree:\n%s", text)
		if diff := cmp.Diff(first, second, opts); diff != "" {
			t.Errorf("round trip mismatch (-first +second):\n%s", diff)
		}
		assert.Equal(t, text, String(second), "formatting is not stable")
	}
}

func TestPrinterIndent(t *testing.T) {
	p := parseProgram(t, wrap("IF true THEN move END IF"))

	var b strings.Builder
	require.NoError(t, (&Printer{Indent: 4}).Fprint(&b, p))
	want := "PROGRAM Test IS\n\nBEGIN\n    IF true THEN\n        move\n    END IF\nEND Test\n"
	assert.Equal(t, want, b.String())
}

func TestFormatStmt(t *testing.T) {
	s := NewIfElse(NextIsWall, NewBlock(NewCall("turnleft")), NewBlock())

	var b strings.Builder
	require.NoError(t, FormatStmt(&b, s))
	assert.Equal(t, "IF next-is-wall THEN\n  turnleft\nELSE\nEND IF\n", b.String())
}
