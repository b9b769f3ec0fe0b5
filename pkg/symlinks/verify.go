package symlinks

import (
	"os"
	"path/filepath"

	"github.com/metov/dotstree/pkg/paths"
	"github.com/metov/dotstree/pkg/types"
	"github.com/rs/zerolog"
)

// Verifier checks declared links against the filesystem without changing it
type Verifier struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewVerifier creates a verifier
func NewVerifier(fs types.FS, logger zerolog.Logger) *Verifier {
	return &Verifier{fs: fs, logger: logger}
}

// IsCorrect is true iff a symlink exists at origin and points to target.
// The stored link value is compared, not followed, so dangling links are
// judged like any other.
func (v *Verifier) IsCorrect(origin, target string) bool {
	info, err := v.fs.Lstat(origin)
	if err != nil {
		v.logger.Debug().Str("origin", origin).Msg("Origin doesn't exist")
		return false
	}

	if info.Mode()&os.ModeSymlink == 0 {
		v.logger.Debug().Str("origin", origin).Msg("Origin is not a symlink")
		return false
	}

	raw, err := v.fs.Readlink(origin)
	if err != nil {
		v.logger.Debug().Err(err).Str("origin", origin).Msg("Cannot read symlink")
		return false
	}

	actual, err := resolveLink(origin, raw)
	if err != nil {
		return false
	}
	expected, err := paths.Resolve(target)
	if err != nil {
		return false
	}

	if actual != expected {
		v.logger.Info().
			Str("origin", origin).
			Str("actual", raw).
			Str("expected", target).
			Msg("Wrong symlink")
		return false
	}
	return true
}

// Status folds the verdicts for every link of a spec. Specs without a
// symlinks key have no opinion; an empty list passes.
func (v *Verifier) Status(spec *types.Spec) types.Status {
	if !spec.HasSymlinks {
		return types.StatusNone
	}

	status := types.StatusPass
	for _, link := range spec.Symlinks {
		if !v.IsCorrect(paths.ExpandHome(link.From), link.To) {
			status = types.StatusFail
		}
	}
	return status
}

// resolveLink canonicalizes a link value; relative values are relative to
// the directory holding the link.
func resolveLink(origin, raw string) (string, error) {
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(filepath.Dir(origin), raw)
	}
	return paths.Resolve(raw)
}
