package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRoundTrip(t *testing.T) {
	cfg := New()
	cfg.Passes.DumpAfter = "*"

	var buf bytes.Buffer
	require.NoError(t, cfg.Dump(&buf))
	assert.Contains(t, buf.String(), "[Passes]")
	assert.Contains(t, buf.String(), "Pipeline = [")

	got := &Config{}
	require.NoError(t, Decode(&buf, got))
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blc.toml")
	data := `
[Format]
Indent = 4

[Passes]
Pipeline = ["simplify", "verify"]
DumpBefore = "simplify"
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))

	cfg := New()
	require.NoError(t, Load(file, cfg))
	assert.Equal(t, 4, cfg.Format.Indent)
	assert.Equal(t, []string{"simplify", "verify"}, cfg.Passes.Pipeline)
	assert.Equal(t, "simplify", cfg.Passes.DumpBefore)
	assert.True(t, cfg.Passes.Verify)
	assert.Equal(t, Defaults.Log, cfg.Log)
	assert.Equal(t, []string{"simplify"}, Defaults.Passes.Pipeline)
}

func TestLoadUnknownField(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blc.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Format]\nTabs = true\n"), 0644))

	err := Load(file, New())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), file+", "), err.Error())
	assert.Contains(t, err.Error(), "field 'Tabs' is not defined in config.FormatConfig")
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "absent.toml"), New())
	assert.True(t, os.IsNotExist(err))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New().Validate())

	cfg := New()
	cfg.Check.Jobs = 0
	assert.EqualError(t, cfg.Validate(), "Check.Jobs must be positive, have 0")

	cfg = New()
	cfg.Format.Indent = -1
	assert.Error(t, cfg.Validate())
}

func TestDebounceDuration(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, WatchConfig{Debounce: 250}.DebounceDuration())
}
