package transform

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/you-not-fish/bl/internal/log"
	"github.com/you-not-fish/bl/internal/syntax"
)

// Pass describes a single transformation over a program.
type Pass struct {
	Name string
	Fn   func(p *syntax.Program) error
}

// Config controls pass execution behavior.
type Config struct {
	DumpBefore string     // dump the program before this pass ("*" for all)
	DumpAfter  string     // dump the program after this pass ("*" for all)
	Verify     bool       // verify the tree before/after each pass
	Dump       io.Writer  // dump destination; os.Stderr if nil
	Logger     log.Logger // pass progress; log.Root() if nil
}

// Run executes the given passes on p in order. It stops at the first
// pass that fails or leaves the tree malformed.
func Run(p *syntax.Program, passes []Pass, cfg Config) error {
	dump := cfg.Dump
	if dump == nil {
		dump = os.Stderr
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Root()
	}

	for _, ps := range passes {
		if shouldDump(cfg.DumpBefore, ps.Name) {
			fmt.Fprintf(dump, "--- before %s (%s) ---\n", ps.Name, p.Name)
			syntax.Format(dump, p)
			fmt.Fprintln(dump)
		}

		if cfg.Verify {
			if err := syntax.Verify(p); err != nil {
				return fmt.Errorf("verify before %s: %w", ps.Name, err)
			}
		}

		start := time.Now()
		if err := ps.Fn(p); err != nil {
			return fmt.Errorf("pass %s: %w", ps.Name, err)
		}
		logger.Debug("Ran pass", "pass", ps.Name, "program", p.Name, "elapsed", time.Since(start))

		if cfg.Verify {
			if err := syntax.Verify(p); err != nil {
				return fmt.Errorf("verify after %s: %w", ps.Name, err)
			}
		}

		if shouldDump(cfg.DumpAfter, ps.Name) {
			fmt.Fprintf(dump, "--- after %s (%s) ---\n", ps.Name, p.Name)
			syntax.Format(dump, p)
			fmt.Fprintln(dump)
		}
	}
	return nil
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}

// registry holds the passes that take no arguments.
var registry = map[string]Pass{
	"simplify": {Name: "simplify", Fn: func(p *syntax.Program) error {
		n := SimplifyProgram(p)
		log.Debug("Simplified IF_ELSE statements", "program", p.Name, "rewritten", n)
		return nil
	}},
	"count": {Name: "count", Fn: func(p *syntax.Program) error {
		total := 0
		for _, st := range Stats(p) {
			total += st.Primitive
		}
		log.Info("Counted primitive calls", "program", p.Name, "total", total)
		return nil
	}},
	"verify": {Name: "verify", Fn: syntax.Verify},
}

// Lookup returns the registered pass called name.
func Lookup(name string) (Pass, bool) {
	ps, ok := registry[name]
	return ps, ok
}

// Names returns the registered pass names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pipeline resolves a list of pass names.
func Pipeline(names []string) ([]Pass, error) {
	passes := make([]Pass, 0, len(names))
	for _, name := range names {
		ps, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown pass %q", name)
		}
		passes = append(passes, ps)
	}
	return passes, nil
}

// RenamePass returns a pass renaming instruction oldName to newName.
func RenamePass(oldName, newName string) Pass {
	return Pass{
		Name: "rename",
		Fn: func(p *syntax.Program) error {
			return RenameInstruction(p, oldName, newName)
		},
	}
}
