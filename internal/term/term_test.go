package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/datasplit/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.NotEmpty(t, Green)

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Empty(t, Green)
	assert.Empty(t, NC)
}

func TestConfigure_AutoHonorsNoColor(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto)
	assert.False(t, Enabled())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular file is not a terminal")
}
