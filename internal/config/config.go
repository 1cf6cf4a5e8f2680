// Package config holds the blc configuration and its TOML encoding.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"time"

	"github.com/naoina/toml"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string // crit, error, warn, info, debug or trace
	Color bool   // colored level names when writing to a terminal
}

// FormatConfig controls source rendering.
type FormatConfig struct {
	Indent int // spaces per nesting level
}

// PassesConfig controls the pass pipeline run by the simplify command.
type PassesConfig struct {
	Pipeline   []string // pass names, in order
	Verify     bool     // verify the tree around each pass
	DumpBefore string   `toml:",omitempty"` // pass name or "*"
	DumpAfter  string   `toml:",omitempty"`
}

// CheckConfig controls the check command.
type CheckConfig struct {
	Jobs      int // files checked concurrently
	CacheSize int // parsed programs kept in memory
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce int // milliseconds to wait for further writes before re-checking
}

// ToolchainConfig is used by the doctor command.
type ToolchainConfig struct {
	GoConstraint string // semantic version constraint on the Go runtime
}

// Config is the complete blc configuration.
type Config struct {
	Log       LogConfig
	Format    FormatConfig
	Passes    PassesConfig
	Check     CheckConfig
	Watch     WatchConfig
	Toolchain ToolchainConfig
}

// Defaults contains the default settings.
var Defaults = Config{
	Log: LogConfig{
		Level: "warn",
		Color: true,
	},
	Format: FormatConfig{
		Indent: 2,
	},
	Passes: PassesConfig{
		Pipeline: []string{"simplify"},
		Verify:   true,
	},
	Check: CheckConfig{
		Jobs:      runtime.NumCPU(),
		CacheSize: 128,
	},
	Watch: WatchConfig{
		Debounce: 100,
	},
	Toolchain: ToolchainConfig{
		GoConstraint: ">= 1.23",
	},
}

// New returns a copy of Defaults.
func New() *Config {
	cfg := Defaults
	cfg.Passes.Pipeline = append([]string(nil), Defaults.Passes.Pipeline...)
	return &cfg
}

// Load reads file over cfg. Settings missing from the file keep their
// current values.
func Load(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = Decode(bufio.NewReader(f), cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// Decode reads TOML from r over cfg.
func Decode(r io.Reader, cfg *Config) error {
	return tomlSettings.NewDecoder(r).Decode(cfg)
}

// Dump writes cfg as TOML.
func (cfg *Config) Dump(w io.Writer) error {
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Validate reports settings that cannot be used.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Format.Indent < 1:
		return fmt.Errorf("Format.Indent must be positive, have %d", cfg.Format.Indent)
	case cfg.Check.Jobs < 1:
		return fmt.Errorf("Check.Jobs must be positive, have %d", cfg.Check.Jobs)
	case cfg.Check.CacheSize < 1:
		return fmt.Errorf("Check.CacheSize must be positive, have %d", cfg.Check.CacheSize)
	case cfg.Watch.Debounce < 0:
		return fmt.Errorf("Watch.Debounce must not be negative, have %d", cfg.Watch.Debounce)
	}
	return nil
}

// DebounceDuration returns the watch debounce interval.
func (c WatchConfig) DebounceDuration() time.Duration {
	return time.Duration(c.Debounce) * time.Millisecond
}
