package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempDir returns a canonical temp directory so comparisons hold on
// systems where the temp root itself is a symlink.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestExpandHome(t *testing.T) {
	home := tempDir(t)
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde slash", "~/.bashrc", filepath.Join(home, ".bashrc")},
		{"nested", "~/.config/nvim", filepath.Join(home, ".config", "nvim")},
		{"other user kept", "~bob/.bashrc", "~bob/.bashrc"},
		{"absolute untouched", "/etc/hosts", "/etc/hosts"},
		{"relative untouched", "dir/file", "dir/file"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	root := tempDir(t)
	real := filepath.Join(root, "real")
	require.NoError(t, os.MkdirAll(filepath.Join(real, "sub"), 0755))
	require.NoError(t, os.Symlink(real, filepath.Join(root, "alias")))

	t.Run("collapses dot segments", func(t *testing.T) {
		got, err := Resolve(filepath.Join(root, "real", "sub", "..", ".", "sub"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(real, "sub"), got)
	})

	t.Run("follows symlinked directories", func(t *testing.T) {
		got, err := Resolve(filepath.Join(root, "alias", "sub"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(real, "sub"), got)
	})

	t.Run("keeps missing tail", func(t *testing.T) {
		got, err := Resolve(filepath.Join(root, "alias", "missing", "file"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(real, "missing", "file"), got)
	})

	t.Run("dangling link is kept", func(t *testing.T) {
		dangling := filepath.Join(root, "dangling")
		require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), dangling))

		got, err := Resolve(dangling)
		require.NoError(t, err)
		assert.Equal(t, dangling, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := Resolve(filepath.Join(root, "alias", "x"))
		require.NoError(t, err)
		twice, err := Resolve(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}

func TestResolveTarget(t *testing.T) {
	specDir := tempDir(t)

	got, err := ResolveTarget(specDir, "bashrc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(specDir, "bashrc"), got)

	got, err = ResolveTarget(specDir, "../shared/./profile")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(specDir), "shared", "profile"), got)

	got, err = ResolveTarget(specDir, "/opt/../etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "/opt/../etc/hosts", got, "absolute declarations are kept as written")
}

func TestFindRoot(t *testing.T) {
	dir := tempDir(t)

	t.Run("explicit argument", func(t *testing.T) {
		got, err := FindRoot(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvDotfilesRoot, dir)
		got, err := FindRoot("")
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("working directory", func(t *testing.T) {
		t.Setenv(EnvDotfilesRoot, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := FindRoot("")
		require.NoError(t, err)
		assert.Equal(t, cwd, got)
	})
}
