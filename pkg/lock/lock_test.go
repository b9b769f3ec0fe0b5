package lock

import (
	"path/filepath"
	"testing"

	"github.com/metov/dotstree/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "install.lock")

	l, err := Acquire(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.Path())

	_, err = Acquire(path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLocked))

	require.NoError(t, l.Release())

	again, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, "/custom/state/dotstree/install.lock", DefaultPath())
}
