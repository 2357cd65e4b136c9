package fs

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp")
	fs := New()
	dir, err := fs.UserConfigDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, dir)
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(path.Join(dir, "foo/bar"))
	assert.NoError(t, err)
}

func TestDirExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		dir := t.TempDir()
		fs := New()
		result, err := fs.DirExists(dir + "foo")
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	name := path.Join(dir, "state.yaml")

	exists, err := fs.FileExists(name)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, fs.WriteFileAtomic(name, []byte("first")))
	require.NoError(t, fs.WriteFileAtomic(name, []byte("second")))

	exists, err = fs.FileExists(name)
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := fs.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should be renamed into place")

	require.NoError(t, fs.Remove(name))
	require.NoError(t, fs.Remove(name), "removing a missing file is not an error")
	_, err = os.Stat(name)
	assert.True(t, os.IsNotExist(err))
}
