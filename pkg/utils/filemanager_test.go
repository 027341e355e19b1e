package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	require.NoError(t, EnsureDirectories(nested, "", dir))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	assert.False(t, FileExists(path))
	assert.False(t, FileExists(dir)) // directories don't count

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, FileExists(path))
}

func TestBackupFileCopiesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("history"), 0o644))

	backup, err := BackupFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, path, backup)

	content, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "history", string(content))

	// The original is left in place.
	assert.True(t, FileExists(path))
}

func TestBackupFileNamesAreUnique(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	first, err := BackupFile(path)
	require.NoError(t, err)
	second, err := BackupFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
