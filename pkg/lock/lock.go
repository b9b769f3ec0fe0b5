// Package lock keeps two dots install runs from racing on the same machine.
package lock

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	"github.com/metov/dotstree/pkg/errors"
)

// DefaultName is the lock file under the XDG state directory
const DefaultName = "dotstree/install.lock"

// Lock is an advisory lock on a file
type Lock struct {
	path  string
	flock *flock.Flock
}

// DefaultPath returns the lock location used when none is configured
func DefaultPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	return filepath.Join(stateHome, DefaultName)
}

// Acquire takes the lock at path without waiting. An empty path means
// DefaultPath. A lock held by another process is ErrLocked.
func Acquire(path string) (*Lock, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create lock directory").
			WithDetail("path", path)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot acquire install lock").
			WithDetail("path", path)
	}
	if !ok {
		return nil, errors.New(errors.ErrLocked, "another dots install is running").
			WithDetail("path", path)
	}
	return &Lock{path: path, flock: fl}, nil
}

// Path is the lock file location
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. The file is left in place.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot release install lock").
			WithDetail("path", l.path)
	}
	return nil
}
