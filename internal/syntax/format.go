package syntax

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces per nesting level used by Format.
const DefaultIndent = 2

// Printer renders an AST back into BL source text. The output always
// re-parses to a structurally equal tree.
type Printer struct {
	Indent int // spaces per nesting level; DefaultIndent if <= 0
}

// Format writes p as BL source text using the default layout.
func Format(w io.Writer, p *Program) error {
	return (&Printer{}).Fprint(w, p)
}

// FormatStmt writes a single statement as BL source text.
func FormatStmt(w io.Writer, s Stmt) error {
	return (&Printer{}).FprintStmt(w, s)
}

// String renders p to a string.
func String(p *Program) string {
	var b strings.Builder
	Format(&b, p)
	return b.String()
}

// Fprint writes the program to w.
func (cfg *Printer) Fprint(w io.Writer, p *Program) error {
	fp := cfg.newFormatter(w)
	fp.program(p)
	return fp.flush()
}

// FprintStmt writes a statement to w at nesting level zero.
func (cfg *Printer) FprintStmt(w io.Writer, s Stmt) error {
	fp := cfg.newFormatter(w)
	fp.stmt(s)
	return fp.flush()
}

type formatter struct {
	w      *bufio.Writer
	unit   string
	indent int
	err    error
}

func (cfg *Printer) newFormatter(w io.Writer) *formatter {
	n := cfg.Indent
	if n <= 0 {
		n = DefaultIndent
	}
	return &formatter{w: bufio.NewWriter(w), unit: strings.Repeat(" ", n)}
}

// line writes one indented line.
func (f *formatter) line(format string, args ...interface{}) {
	if f.err != nil {
		return
	}
	if _, err := f.w.WriteString(strings.Repeat(f.unit, f.indent)); err != nil {
		f.err = err
		return
	}
	if _, err := fmt.Fprintf(f.w, format, args...); err != nil {
		f.err = err
		return
	}
	f.err = f.w.WriteByte('\n')
}

func (f *formatter) blank() {
	if f.err == nil {
		f.err = f.w.WriteByte('\n')
	}
}

func (f *formatter) flush() error {
	if f.err != nil {
		return f.err
	}
	return f.w.Flush()
}

func (f *formatter) program(p *Program) {
	f.line("PROGRAM %s IS", p.Name)
	f.blank()

	f.indent++
	if p.Context != nil {
		for _, inst := range p.Context.Instructions() {
			f.line("INSTRUCTION %s IS", inst.Name)
			f.block(inst.Body)
			f.line("END %s", inst.Name)
			f.blank()
		}
	}
	f.indent--

	f.line("BEGIN")
	f.block(p.Body)
	f.line("END %s", p.Name)
}

// block writes the statements of b one level deeper than the current line.
func (f *formatter) block(b *Block) {
	if b == nil {
		return
	}
	f.indent++
	for _, s := range b.Stmts {
		f.stmt(s)
	}
	f.indent--
}

func (f *formatter) stmt(s Stmt) {
	switch s := s.(type) {
	case *Block:
		for _, x := range s.Stmts {
			f.stmt(x)
		}

	case *IfStmt:
		f.line("IF %s THEN", s.Cond.Word())
		f.block(s.Body)
		f.line("END IF")

	case *IfElseStmt:
		f.line("IF %s THEN", s.Cond.Word())
		f.block(s.Then)
		f.line("ELSE")
		f.block(s.Else)
		f.line("END IF")

	case *WhileStmt:
		f.line("WHILE %s DO", s.Cond.Word())
		f.block(s.Body)
		f.line("END WHILE")

	case *CallStmt:
		f.line("%s", s.Name)
	}
}
