package testutil

import (
	"path/filepath"
	"testing"
)

// Environment is a dotfiles tree plus everything a run touches outside it
type Environment struct {
	// Root is the dotfiles tree, also exported as DOTFILES_ROOT
	Root string
	// Home is exported as HOME, so ~ in specs lands here
	Home string
	// State is exported as XDG_STATE_HOME and holds logs and the install lock
	State string
	// ConfigFile is an empty user config exported as DOTS_CONFIG
	ConfigFile string

	t *testing.T
}

// NewEnvironment creates a test environment with canonical temp paths
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	env := &Environment{
		Root:  CanonicalTempDir(t),
		Home:  CanonicalTempDir(t),
		State: CanonicalTempDir(t),
		t:     t,
	}
	env.ConfigFile = CreateFile(t, env.State, "config.toml", "")

	t.Setenv("DOTFILES_ROOT", env.Root)
	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_STATE_HOME", env.State)
	t.Setenv("DOTS_CONFIG", env.ConfigFile)
	return env
}

// WriteSpec writes spec.yaml into the directory rel below Root
func (env *Environment) WriteSpec(rel, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.Root, filepath.Join(rel, "spec.yaml"), content)
}

// WriteTree writes files below Root. Keys are slash-separated relative paths.
func (env *Environment) WriteTree(files map[string]string) {
	env.t.Helper()
	for rel, content := range files {
		CreateFile(env.t, env.Root, rel, content)
	}
}

// RootPath joins a slash-separated path onto Root
func (env *Environment) RootPath(rel string) string {
	return filepath.Join(env.Root, filepath.FromSlash(rel))
}

// HomePath joins a slash-separated path onto Home
func (env *Environment) HomePath(rel string) string {
	return filepath.Join(env.Home, filepath.FromSlash(rel))
}
