package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/metov/dotstree/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config layer at an empty file so the developer's
// own configuration never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	t.Setenv(EnvConfigFile, path)
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"spec.yaml", "spec.yml"}, cfg.Specs.Filenames)
	assert.Equal(t, []string{".git"}, cfg.Specs.SkipDirs)
	assert.Equal(t, "sh", cfg.Shell.Command)
	assert.Equal(t, "-c", cfg.Shell.Flag)
	assert.False(t, cfg.Install.AssumeYes)
	assert.Empty(t, cfg.Install.Lock)
}

func TestLoadLayers(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		isolate(t)

		cfg, err := Load(Options{})
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("user config", func(t *testing.T) {
		path := isolate(t)
		require.NoError(t, os.WriteFile(path, []byte(`
[shell]
command = "bash"
`), 0644))

		cfg, err := Load(Options{})
		require.NoError(t, err)
		assert.Equal(t, "bash", cfg.Shell.Command)
		assert.Equal(t, "-c", cfg.Shell.Flag)
	})

	t.Run("root config replaces lists", func(t *testing.T) {
		isolate(t)
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, RootConfigFile), []byte(`
[specs]
filenames = ["dots.yaml"]
skip_dirs = [".git", "node_modules"]
`), 0644))

		cfg, err := Load(Options{Root: root})
		require.NoError(t, err)
		assert.Equal(t, []string{"dots.yaml"}, cfg.Specs.Filenames)
		assert.True(t, cfg.SkipsDir("node_modules"))
	})

	t.Run("env beats files", func(t *testing.T) {
		path := isolate(t)
		require.NoError(t, os.WriteFile(path, []byte("[install]\nassume_yes = false\n"), 0644))
		t.Setenv("DOTS_INSTALL__ASSUME_YES", "true")
		t.Setenv("DOTS_SPECS__SKIP_DIRS", ".git,.hg")

		cfg, err := Load(Options{})
		require.NoError(t, err)
		assert.True(t, cfg.Install.AssumeYes)
		assert.Equal(t, []string{".git", ".hg"}, cfg.Specs.SkipDirs)
	})

	t.Run("overrides win", func(t *testing.T) {
		isolate(t)
		t.Setenv("DOTS_INSTALL__ASSUME_YES", "false")

		cfg, err := Load(Options{Overrides: map[string]interface{}{
			"install.assume_yes": true,
		}})
		require.NoError(t, err)
		assert.True(t, cfg.Install.AssumeYes)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed root config", func(t *testing.T) {
		isolate(t)
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, RootConfigFile), []byte("[specs\n"), 0644))

		_, err := Load(Options{Root: root})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("missing explicit user config", func(t *testing.T) {
		t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "absent.toml"))

		_, err := Load(Options{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("empty filenames rejected", func(t *testing.T) {
		isolate(t)

		_, err := Load(Options{Overrides: map[string]interface{}{
			"specs.filenames": []string{},
		}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestShellArgs(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"sh", "-c", "exit 0"}, cfg.ShellArgs("exit 0"))

	cfg.Shell.Flag = ""
	assert.Equal(t, []string{"sh", "exit 0"}, cfg.ShellArgs("exit 0"))
}

func TestTOMLRoundTrip(t *testing.T) {
	isolate(t)
	out, err := Default().TOML()
	require.NoError(t, err)
	assert.Contains(t, out, "[specs]")
	assert.Contains(t, out, "spec.yaml")

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, RootConfigFile), []byte(out), 0644))
	cfg, err := Load(Options{Root: root})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
