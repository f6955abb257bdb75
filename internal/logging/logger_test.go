package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/datasplit/internal/config"
	"github.com/backmassage/datasplit/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "datasplit.log")
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "INFO")
	assert.Contains(t, string(b), "to file")
}

func TestLogger_RoutesErrorsToStderr(t *testing.T) {
	cfg := config.DefaultConfig()
	var stdout, stderr bytes.Buffer
	l, err := newLogger(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Info("copied %d files", 3)
	l.Warn("skipping %s", "nested")
	l.Error("copy failed")
	l.Success("done")
	require.NoError(t, l.Close())

	assert.Contains(t, stdout.String(), "copied 3 files")
	assert.Contains(t, stdout.String(), "WARN")
	assert.Contains(t, stdout.String(), "SUCCESS\tdone\n")
	assert.NotContains(t, stdout.String(), "result")
	assert.NotContains(t, stdout.String(), "copy failed")
	assert.Contains(t, stderr.String(), "ERROR")
	assert.Contains(t, stderr.String(), "copy failed")
}

func TestLogger_DebugOnlyWhenVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	var stdout, stderr bytes.Buffer
	l, err := newLogger(&cfg, &stdout, &stderr)
	require.NoError(t, err)
	l.Debug("hidden")
	assert.NotContains(t, stdout.String(), "hidden")

	cfg.Verbose = true
	stdout.Reset()
	l, err = newLogger(&cfg, &stdout, &stderr)
	require.NoError(t, err)
	l.Debug("shown")
	assert.Contains(t, stdout.String(), "DEBUG")
	assert.Contains(t, stdout.String(), "shown")
}

func TestLogger_SuccessTag(t *testing.T) {
	t.Cleanup(func() { term.Configure(config.ColorNever) })
	term.Configure(config.ColorAlways)

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "datasplit.log")
	var stdout, stderr bytes.Buffer
	l, err := newLogger(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Success("processing done!")
	require.NoError(t, l.Close())

	assert.Contains(t, stdout.String(), term.Green+"SUCCESS"+term.NC+"\tprocessing done!\n")
	assert.NotContains(t, stdout.String(), "INFO")

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "SUCCESS\tprocessing done!\n", "file sink is uncolored")
	assert.NotContains(t, string(b), "\033[")
}
