package specs

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/filesystem"
	"github.com/metov/dotstree/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTree creates a canonical temp directory and writes files into it.
// Keys are slash-separated relative paths; a trailing slash makes a directory.
func newTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// bufferLogger returns a logger writing JSON lines into the returned buffer
func bufferLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf).Level(zerolog.TraceLevel), &buf
}

func testLoader(t *testing.T) (*Loader, *bytes.Buffer) {
	t.Helper()
	logger, buf := bufferLogger()
	return NewLoader(filesystem.NewOS(), config.Default(), logger), buf
}

// failingFS fails ReadFile for one path
type failingFS struct {
	types.FS
	path string
}

func (f failingFS) ReadFile(name string) ([]byte, error) {
	if name == f.path {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.ReadFile(name)
}

// dirs extracts the directories of the given locations relative to root
func dirs(t *testing.T, root string, locations []Location) []string {
	t.Helper()
	out := make([]string, 0, len(locations))
	for _, loc := range locations {
		rel, err := filepath.Rel(root, loc.Dir)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}
