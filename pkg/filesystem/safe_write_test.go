package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWrite_CreatesParentsAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.yml")

	require.NoError(t, SafeWrite(path, []byte("hello"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestSafeWrite_ReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yml")

	require.NoError(t, SafeWrite(path, []byte("first"), 0644))
	require.NoError(t, SafeWrite(path, []byte("second"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadIfExists(t *testing.T) {
	dir := t.TempDir()

	data, ok, err := ReadIfExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	path := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	data, ok, err = ReadIfExists(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", string(data))
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, RemoveIfExists(path))
	require.NoError(t, RemoveIfExists(path))

	exists, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}
