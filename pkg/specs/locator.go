package specs

import (
	"os"
	"path/filepath"

	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/types"
	"github.com/rs/zerolog"
)

// Location is a directory holding a spec and the spec file chosen in it
type Location struct {
	Dir  string
	File string
}

// Locator searches a directory tree for spec files
type Locator struct {
	fs        types.FS
	filenames []string
	skip      func(name string) bool
	logger    zerolog.Logger
}

// NewLocator creates a locator using the filenames and skip list from cfg
func NewLocator(fs types.FS, cfg *config.Config, logger zerolog.Logger) *Locator {
	return &Locator{
		fs:        fs,
		filenames: cfg.Specs.Filenames,
		skip:      cfg.SkipsDir,
		logger:    logger,
	}
}

// Locate returns every directory under root that holds a spec, never
// returning a directory below another returned one. Results follow
// directory-name order. A missing or unreadable root is an error;
// unreadable subdirectories are logged and skipped.
func (l *Locator) Locate(root string) ([]Location, error) {
	info, err := l.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "spec tree root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access spec tree root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "spec tree root is not a directory").
			WithDetail("path", root)
	}

	found, err := l.locate(root)
	if err != nil {
		// Only the root itself can fail here; deeper failures are skipped.
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read spec tree root").
			WithDetail("path", root)
	}

	l.logger.Debug().Str("root", root).Int("count", len(found)).Msg("Located specs")
	return found, nil
}

// locate handles one directory. Each call returns its own results.
func (l *Locator) locate(dir string) ([]Location, error) {
	if file, ok := l.specFile(dir); ok {
		l.logger.Debug().Str("path", file).Msg("Found spec")
		return []Location{{Dir: dir, File: file}}, nil
	}
	l.logger.Trace().Str("dir", dir).Msg("No specs directly under directory")

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLocatorAccess, "cannot read directory").
			WithDetail("path", dir)
	}

	var found []Location
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		sub := filepath.Join(dir, entry.Name())
		if l.skip(entry.Name()) {
			l.logger.Trace().Str("dir", sub).Msg("Skipping reserved directory")
			continue
		}

		locations, err := l.locate(sub)
		if err != nil {
			l.logger.Error().Err(err).Str("dir", sub).Msg("Skipping unreadable directory")
			continue
		}
		found = append(found, locations...)
	}
	return found, nil
}

// specFile returns the highest priority spec file directly in dir
func (l *Locator) specFile(dir string) (string, bool) {
	var matches []string
	for _, name := range l.filenames {
		candidate := filepath.Join(dir, name)
		info, err := l.fs.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		matches = append(matches, candidate)
	}

	if len(matches) == 0 {
		return "", false
	}
	if len(matches) > 1 {
		l.logger.Warn().
			Str("dir", dir).
			Strs("files", matches).
			Str("using", matches[0]).
			Msg("Multiple specs in directory")
	}
	return matches[0], true
}
