package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/you-not-fish/bl/internal/config"
	"github.com/you-not-fish/bl/internal/log"
	"github.com/you-not-fish/bl/internal/syntax"
)

// parseFile parses filename and prints the syntax error, if any, to
// stderr. It returns nil on failure.
func parseFile(filename string) *syntax.Program {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return nil
	}
	defer f.Close()

	prog, err := syntax.Parse(filename, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	log.Debug("Parsed program", "file", filename, "program", prog.Name, "instructions", prog.Context.Len())
	return prog
}

// runTokens scans the input file and prints all tokens with positions.
func runTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errors []string
	errh := func(line, col uint32, msg string) {
		errors = append(errors, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		fmt.Printf("%-20s %-12s %s\n", s.Pos(), tok, formatLiteral(s.Literal()))
		if tok.IsEOF() {
			break
		}
	}

	// Print any errors
	if len(errors) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errors {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}
	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\t':
			b.WriteString("\\t")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runAST parses the input file and outputs the syntax tree.
func runAST(filename, format string) int {
	prog := parseFile(filename)
	if prog == nil {
		return 1
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, prog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "spew":
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(os.Stdout, prog)
	case "text", "":
		syntax.Fprint(os.Stdout, prog)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q\n", format)
		return 2
	}
	return 0
}

// runFmt prints the input file in canonical layout.
func runFmt(filename string, fc config.FormatConfig) int {
	prog := parseFile(filename)
	if prog == nil {
		return 1
	}
	return render(prog, fc)
}

func render(prog *syntax.Program, fc config.FormatConfig) int {
	pr := &syntax.Printer{Indent: fc.Indent}
	if err := pr.Fprint(os.Stdout, prog); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
