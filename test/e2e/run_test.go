package e2e

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/you-not-fish/bl/internal/syntax"
	"github.com/you-not-fish/bl/internal/transform"
)

var update = flag.Bool("update", false, "rewrite .golden files")

// TestE2E runs end-to-end tests for all .bl files in testdata/.
// Each test:
//  1. Parses the program and runs the simplify pipeline with verification
//  2. Renders the result and appends the primitive call count of each unit
//  3. Checks that the rendered text parses back to the same tree
//  4. Compares output against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.bl")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .bl test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".bl")
		t.Run(name, func(t *testing.T) {
			compareGolden(t, testFile, runPipeline(t, testFile))
		})
	}
}

// TestE2EErrors checks that every program in testdata/errors/ is
// rejected with the message in its .golden file.
func TestE2EErrors(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/errors/*.bl")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .bl test files found in testdata/errors/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".bl")
		t.Run(name, func(t *testing.T) {
			f, err := os.Open(testFile)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			prog, err := syntax.Parse(filepath.ToSlash(testFile), f)
			if err == nil {
				t.Fatalf("parse succeeded, want error")
			}
			if prog != nil {
				t.Errorf("parse returned a program alongside %v", err)
			}
			compareGolden(t, testFile, err.Error()+"\n")
		})
	}
}

// runPipeline parses blFile, simplifies it and returns the rendered
// program followed by per-unit primitive call counts.
func runPipeline(t *testing.T, blFile string) string {
	t.Helper()

	f, err := os.Open(blFile)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	prog, err := syntax.Parse(blFile, f)
	if err != nil {
		t.Fatalf("parse error:\n%v", err)
	}
	before := transform.CountPrimitiveCalls(prog.Body)

	simplify, _ := transform.Lookup("simplify")
	if err := transform.Run(prog, []transform.Pass{simplify}, transform.Config{Verify: true}); err != nil {
		t.Fatalf("pass pipeline failed for %s: %v", prog.Name, err)
	}
	if after := transform.CountPrimitiveCalls(prog.Body); after != before {
		t.Errorf("simplify changed the primitive call count: %d -> %d", before, after)
	}

	text := syntax.String(prog)
	reparsed, err := syntax.Parse("rendered", strings.NewReader(text))
	if err != nil {
		t.Fatalf("rendered program does not parse: %v\n%s", err, text)
	}
	if !syntax.EqualProgram(prog, reparsed) {
		t.Errorf("rendered program parses to a different tree:\n%s", text)
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("--- counts ---\n")
	for _, st := range transform.Stats(prog) {
		fmt.Fprintf(&b, "%s %d\n", st.Unit, st.Primitive)
	}
	return b.String()
}

func compareGolden(t *testing.T, blFile, got string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(blFile, ".bl") + ".golden"
	if *update {
		if err := os.WriteFile(goldenFile, []byte(got), 0o644); err != nil {
			t.Fatalf("writing golden file: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if diff := cmp.Diff(string(expected), got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
