package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/you-not-fish/bl/internal/config"
	"github.com/you-not-fish/bl/internal/log"
)

const watchOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

// watch checks filename once and then again after each burst of changes
// to it, until ctx ends. The parent directory is watched so that files
// replaced on save are still seen.
func watch(ctx context.Context, filename string, debounce time.Duration, c *checker, onCheck func([]*report)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(filename)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	recheck := func() error {
		reports, err := c.check(ctx, []string{filename})
		if err != nil {
			return err
		}
		onCheck(reports)
		return nil
	}
	if err := recheck(); err != nil {
		return ignoreCanceled(err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&watchOps == 0 {
				continue
			}
			log.Trace("File changed", "file", ev.Name, "op", ev.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("File watcher error", "err", err)

		case <-fire:
			fire = nil
			if err := recheck(); err != nil {
				return ignoreCanceled(err)
			}
		}
	}
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runWatch checks filename whenever it changes until ctx ends.
func runWatch(ctx context.Context, filename string, cfg *config.Config) int {
	c, err := newChecker(cfg.Check)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	onCheck := func(reports []*report) {
		fmt.Printf("--- %s ---\n", time.Now().Format("15:04:05"))
		printReports(reports)
	}
	log.Info("Watching for changes", "file", filename, "debounce", cfg.Watch.DebounceDuration())
	if err := watch(ctx, filename, cfg.Watch.DebounceDuration(), c, onCheck); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
