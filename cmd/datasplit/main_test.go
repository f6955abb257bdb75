package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImages(t *testing.T, dir string, n int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, string(rune('a'+i))+".jpg")
		require.NoError(t, os.WriteFile(name, []byte{byte(i)}, 0o644))
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}

func TestRun_SplitsDataRoot(t *testing.T) {
	root := t.TempDir()
	writeImages(t, filepath.Join(root, "flower_photos", "rose"), 10)
	writeImages(t, filepath.Join(root, "flower_photos", "tulip"), 20)

	code := run([]string{"--no-color", "--progress", "none", root})
	require.Equal(t, 0, code)

	assert.Equal(t, 9, countFiles(t, filepath.Join(root, "train", "rose")))
	assert.Equal(t, 1, countFiles(t, filepath.Join(root, "val", "rose")))
	assert.Equal(t, 18, countFiles(t, filepath.Join(root, "train", "tulip")))
	assert.Equal(t, 2, countFiles(t, filepath.Join(root, "val", "tulip")))
}

func TestRun_MissingSourceFails(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, 1, run([]string{"--no-color", root}))
	_, err := os.Stat(filepath.Join(root, "train"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_InvalidArguments(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--split-rate", "2"}))
	assert.Equal(t, 1, run([]string{"a", "b"}))
	assert.Equal(t, 1, run([]string{"--bogus"}))
}

func TestRun_Version(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-V"}))
}
