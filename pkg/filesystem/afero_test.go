package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFSMemory(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := NewAferoFS(mem)

	require.NoError(t, fs.MkdirAll("/dots/shell/bash", 0755))
	require.NoError(t, afero.WriteFile(mem, "/dots/shell/bash/spec.yaml", []byte("check: exit 0\n"), 0644))

	data, err := fs.ReadFile("/dots/shell/bash/spec.yaml")
	require.NoError(t, err)
	assert.Equal(t, "check: exit 0\n", string(data))

	_, err = fs.ReadFile("/dots/shell")
	assert.Error(t, err, "reading a directory")

	entries, err := fs.ReadDir("/dots/shell")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bash", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	info, err := fs.Lstat("/dots/shell/bash/spec.yaml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	require.NoError(t, fs.Rename("/dots/shell/bash/spec.yaml", "/dots/shell/bash/spec.yml"))
	_, err = fs.Stat("/dots/shell/bash/spec.yml")
	assert.NoError(t, err)
	require.NoError(t, fs.Remove("/dots/shell/bash/spec.yml"))
}

func TestAferoFSMemoryHasNoLinks(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	err := fs.Symlink("/dots/vimrc", "/home/.vimrc")
	assert.ErrorIs(t, err, afero.ErrNoSymlink)

	_, err = fs.Readlink("/home/.vimrc")
	assert.ErrorIs(t, err, afero.ErrNoReadlink)
}

func TestAferoFSOnDisk(t *testing.T) {
	fs := NewAferoFS(afero.NewOsFs())
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")

	require.NoError(t, fs.Symlink(target, link))

	got, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}
