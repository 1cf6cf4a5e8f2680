package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented debug representation of the AST to w,
// one node per line with its position.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if isNil(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s %q\n", n.pos, n.Name)
		p.indent++
		if n.Context != nil && n.Context.Len() > 0 {
			p.printf("Context:\n")
			p.indent++
			for _, inst := range n.Context.Instructions() {
				p.print(inst)
			}
			p.indent--
		}
		p.printf("Body:\n")
		p.indent++
		p.print(n.Body)
		p.indent--
		p.indent--

	case *Instruction:
		p.printf("Instruction %s %q\n", n.pos, n.Name)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *Block:
		p.printf("BLOCK %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IF %s %s\n", n.pos, n.Cond)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *IfElseStmt:
		p.printf("IF_ELSE %s %s\n", n.pos, n.Cond)
		p.indent++
		p.printf("Then:\n")
		p.indent++
		p.print(n.Then)
		p.indent--
		p.printf("Else:\n")
		p.indent++
		p.print(n.Else)
		p.indent--
		p.indent--

	case *WhileStmt:
		p.printf("WHILE %s %s\n", n.pos, n.Cond)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *CallStmt:
		p.printf("CALL %s %q\n", n.pos, n.Name)

	default:
		p.printf("<%T>\n", node)
	}
}
