package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "parent", "child")

	err := EnsureDir(dir)
	require.Nil(t, err)

	info, err := os.Stat(dir)
	require.Nil(t, err)
	assert.True(t, info.IsDir())

	// no-op when it already exists
	assert.Nil(t, EnsureDir(dir))
}

func TestEnsureDirOverFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "file.txt")
	require.Nil(t, os.WriteFile(filePath, []byte("hello"), 0600))

	err := EnsureDir(filePath)
	assert.EqualError(t, err, filePath+" exists and is not a directory")
}

func TestWriteFileIfNotExist(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "config.yml")

	written, err := WriteFileIfNotExist(filePath, []byte("first"), 0600)
	require.Nil(t, err)
	assert.True(t, written)

	written, err = WriteFileIfNotExist(filePath, []byte("second"), 0600)
	require.Nil(t, err)
	assert.False(t, written, "Expected an existing file to be kept")

	content, err := os.ReadFile(filePath)
	require.Nil(t, err)
	assert.Equal(t, "first", string(content))

	info, err := os.Stat(filePath)
	require.Nil(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFileIfNotExistMissingDir(t *testing.T) {
	_, err := WriteFileIfNotExist(filepath.Join(t.TempDir(), "missing", "config.yml"), []byte("x"), 0600)
	assert.NotNil(t, err)
}
