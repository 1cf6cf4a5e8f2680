package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/bl/internal/config"
	"github.com/you-not-fish/bl/internal/log"
	"github.com/you-not-fish/bl/internal/syntax"
	"github.com/you-not-fish/bl/internal/transform"
)

// report is the outcome of checking one file.
type report struct {
	file      string
	prog      *syntax.Program
	err       error    // read, parse or verification failure
	undefined []string // calls of names never declared
	unused    []string // declared instructions never called
	cached    bool
}

func (r *report) ok() bool {
	return r.err == nil && len(r.undefined) == 0
}

// parsed is a cache entry. It is valid while the file's size and
// modification time are unchanged.
type parsed struct {
	modTime time.Time
	size    int64
	prog    *syntax.Program
	err     error
}

// checker checks files concurrently and caches parse results across
// runs. Cached programs are never mutated.
type checker struct {
	jobs  int
	cache *lru.ARCCache // file name -> *parsed
}

func newChecker(cc config.CheckConfig) (*checker, error) {
	if cc.Jobs < 1 {
		return nil, fmt.Errorf("jobs must be positive, have %d", cc.Jobs)
	}
	cache, err := lru.NewARC(cc.CacheSize)
	if err != nil {
		return nil, err
	}
	return &checker{jobs: cc.Jobs, cache: cache}, nil
}

// check checks files with at most c.jobs in flight. Problems in a file
// go into its report; the returned error is only set when ctx ends.
func (c *checker) check(ctx context.Context, files []string) ([]*report, error) {
	reports := make([]*report, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = c.checkFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *checker) checkFile(file string) *report {
	r := &report{file: file}
	r.prog, r.cached, r.err = c.parse(file)
	if r.err != nil {
		return r
	}
	if err := syntax.Verify(r.prog); err != nil {
		r.err = err
		return r
	}
	r.undefined = transform.Undefined(r.prog)
	r.unused = transform.Unused(r.prog)
	return r
}

// parse returns the program in file, from the cache when the file has
// not changed since it was last parsed.
func (c *checker) parse(file string) (*syntax.Program, bool, error) {
	fi, err := os.Stat(file)
	if err != nil {
		return nil, false, err
	}
	if v, ok := c.cache.Get(file); ok {
		e := v.(*parsed)
		if e.modTime.Equal(fi.ModTime()) && e.size == fi.Size() {
			log.Trace("Parse cache hit", "file", file)
			return e.prog, true, e.err
		}
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, false, err
	}
	prog, err := syntax.Parse(file, bytes.NewReader(data))
	c.cache.Add(file, &parsed{modTime: fi.ModTime(), size: fi.Size(), prog: prog, err: err})
	return prog, false, err
}

// printReports writes reports to stdout and problems to stderr. It
// returns the number of files with errors.
func printReports(reports []*report) int {
	failed := 0
	for _, r := range reports {
		if r.err != nil {
			fmt.Fprintln(os.Stderr, r.err)
		}
		for _, name := range r.undefined {
			fmt.Fprintf(os.Stderr, "%s: error: call of undefined instruction %q\n", r.file, name)
		}
		for _, name := range r.unused {
			fmt.Fprintf(os.Stderr, "%s: warning: instruction %q is never called\n", r.file, name)
		}
		if !r.ok() {
			failed++
			continue
		}
		fmt.Printf("%s: ok (%d instructions, %d primitive calls)\n",
			r.file, r.prog.Context.Len(), transform.CountPrimitiveCalls(r.prog.Body))
	}
	return failed
}

// runCheck parses, verifies and lints the given files.
func runCheck(files []string, cc config.CheckConfig) int {
	c, err := newChecker(cc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	reports, err := c.check(context.Background(), files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if printReports(reports) > 0 {
		return 1
	}
	return 0
}
