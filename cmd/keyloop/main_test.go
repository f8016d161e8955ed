package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keyloop/internal/config"
	"github.com/vovakirdan/keyloop/internal/core"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := executeErr(t, args...)
	require.NoError(t, err)
	return out
}

func executeErr(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		flagPreset = ""
		flagConfig = ""
		flagSimSink = "console"
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestFirstKey(t *testing.T) {
	bind := core.DefaultKeyBind()

	key, err := firstKey(bind, " Run ")
	require.NoError(t, err)
	assert.Equal(t, "space", key)

	_, err = firstKey(bind, "jump")
	assert.Error(t, err)

	_, err = firstKey(core.NewKeyBind(), "up")
	assert.Error(t, err)
}

func TestBindingsCommand(t *testing.T) {
	out := execute(t, "bindings")

	assert.Contains(t, out, "up, w")
	assert.Contains(t, out, "space")
	assert.Contains(t, out, "released after 700ms without a first repeat, then 150ms between repeats")
}

func TestConfigCommandRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(execute(t, "config")), 0o644))

	want, err := config.Load(path)
	require.NoError(t, err)

	// Feeding the output back with a preset must not scale it a second time.
	out := execute(t, "config", "--config", path, "--preset", "fast")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, out, "update_rate: 60")
}

func TestConfigCommandRejectsUnknownPreset(t *testing.T) {
	_, err := executeErr(t, "config", "--preset", "warp")
	assert.ErrorContains(t, err, "warp")
}

func TestSimulateRejectsUnknownSink(t *testing.T) {
	_, err := executeErr(t, "simulate", "--duration", "10ms", "--sink", "nope")
	require.Error(t, err)
	assert.ErrorContains(t, err, "nope")
	assert.ErrorContains(t, err, "console")
}

func TestSimulateCommand(t *testing.T) {
	out := execute(t, "simulate", "--duration", "60ms", "--hold", "right,run", "--sink", "discard", "--width", "40", "--height", "10", "--log-level", "error")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 11)
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "ticks="), "summary line: %q", lines[len(lines)-1])
}
