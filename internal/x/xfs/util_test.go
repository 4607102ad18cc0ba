package xfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	ok, err := Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "sub", "doc.json")

	require.NoError(t, WriteFile(filename, []byte(`{"a":1}`)))
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(content))
	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, DefaultFilePerm, info.Mode().Perm())

	require.NoError(t, os.Chmod(filename, 0600))
	require.NoError(t, WriteFile(filename, []byte(`{}`)))
	content, err = os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(content))
	info, err = os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(filename))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFile_Error(t *testing.T) {
	dir := t.TempDir()
	// the target is an existing directory, so the rename fails
	target := filepath.Join(dir, "doc.json")
	require.NoError(t, os.Mkdir(target, DefaultDirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, DefaultFilePerm))

	assert.Error(t, WriteFile(target, []byte(`{}`)))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
