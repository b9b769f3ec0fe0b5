package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/metov/dotstree/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot names the tree to scan when no PATH argument is given
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ExpandHome expands a leading ~ or ~/ to the home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// Resolve returns an absolute, canonical form of path without requiring it
// to exist. The longest existing prefix has its symlinks evaluated; the
// remaining components are appended as-is. Dangling links are treated as
// missing and kept unresolved.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot make path absolute").
			WithDetail("path", path)
	}

	existing := abs
	var rest []string
	for {
		if _, err := os.Stat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		rest = append(rest, filepath.Base(existing))
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		// Racing removal or permission problem: fall back to the lexical form.
		return abs, nil
	}

	for i := len(rest) - 1; i >= 0; i-- {
		resolved = filepath.Join(resolved, rest[i])
	}
	return resolved, nil
}

// ResolveTarget normalizes the "to" side of a symlink declaration.
// Absolute declarations are kept as written; relative ones are joined to
// specDir and canonicalized.
func ResolveTarget(specDir, to string) (string, error) {
	if strings.HasPrefix(to, string(filepath.Separator)) {
		return to, nil
	}
	return Resolve(filepath.Join(specDir, to))
}

// FindRoot picks the directory to scan. An explicit argument wins, then
// DOTFILES_ROOT, then the current working directory. The result is
// absolute; existence is checked by the locator.
func FindRoot(arg string) (string, error) {
	root := arg
	if root == "" {
		root = os.Getenv(EnvDotfilesRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		root = cwd
	}

	abs, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot make root absolute").
			WithDetail("path", root)
	}
	return abs, nil
}
