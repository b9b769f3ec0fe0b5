package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironment(t *testing.T) {
	env := NewEnvironment(t)

	assert.Equal(t, env.Root, os.Getenv("DOTFILES_ROOT"))
	assert.Equal(t, env.Home, os.Getenv("HOME"))
	assert.Equal(t, env.State, os.Getenv("XDG_STATE_HOME"))
	assert.Equal(t, env.ConfigFile, os.Getenv("DOTS_CONFIG"))
	assert.FileExists(t, env.ConfigFile)

	resolved, err := filepath.EvalSymlinks(env.Root)
	require.NoError(t, err)
	assert.Equal(t, env.Root, resolved)
}

func TestEnvironmentWriters(t *testing.T) {
	env := NewEnvironment(t)

	path := env.WriteSpec("shell/bash", "check: exit 0\n")
	assert.Equal(t, env.RootPath("shell/bash/spec.yaml"), path)

	env.WriteTree(map[string]string{"editor/vim/vimrc": "set nu\n"})
	data, err := os.ReadFile(env.RootPath("editor/vim/vimrc"))
	require.NoError(t, err)
	assert.Equal(t, "set nu\n", string(data))

	CreateSymlink(t, env.RootPath("editor/vim/vimrc"), env.HomePath(".vimrc"))
	target, err := os.Readlink(env.HomePath(".vimrc"))
	require.NoError(t, err)
	assert.Equal(t, env.RootPath("editor/vim/vimrc"), target)

	dir := CreateDir(t, env.Home, ".config/nvim")
	assert.DirExists(t, dir)
}
