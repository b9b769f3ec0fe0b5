package symlinks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/types"
	"github.com/rs/zerolog"
)

// Outcome says what Install did
type Outcome int

const (
	// OutcomeUnchanged means nothing was touched
	OutcomeUnchanged Outcome = iota
	// OutcomeCreated means a new link was made where nothing existed
	OutcomeCreated
	// OutcomeReplaced means a link pointing elsewhere was swapped
	OutcomeReplaced
	// OutcomeMoved means a file or directory was moved to the target and linked
	OutcomeMoved
	// OutcomeDeclined means the user refused to resolve a conflict
	OutcomeDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeMoved:
		return "moved"
	case OutcomeDeclined:
		return "declined"
	default:
		return "unchanged"
	}
}

// Changed reports whether the outcome altered (or in dry-run, would alter) the filesystem
func (o Outcome) Changed() bool {
	return o == OutcomeCreated || o == OutcomeReplaced || o == OutcomeMoved
}

// InstallerOptions configures an Installer
type InstallerOptions struct {
	FS      types.FS
	Confirm types.Confirmer
	Logger  zerolog.Logger

	// DryRun decides and logs without touching the filesystem. Conflicts
	// take the prompt default without asking.
	DryRun bool
}

// Installer creates declared links, resolving conflicts with the user
type Installer struct {
	fs       types.FS
	verifier *Verifier
	confirm  types.Confirmer
	dryRun   bool
	logger   zerolog.Logger
}

// NewInstaller creates an installer
func NewInstaller(opts InstallerOptions) *Installer {
	return &Installer{
		fs:       opts.FS,
		verifier: NewVerifier(opts.FS, opts.Logger),
		confirm:  opts.Confirm,
		dryRun:   opts.DryRun,
		logger:   opts.Logger,
	}
}

// Install makes origin a symlink to target. Running it again right after
// a successful call is a no-op that asks nothing.
//
//   - correct link already there: nothing to do
//   - nothing at origin: create parent directories and the link
//   - a link pointing elsewhere: ask "Replace {origin}?", then swap it
//   - a file or directory: ask "Move {origin} to {target}?", then move it
//     to target and link back, so its content survives
//
// Declining returns OutcomeDeclined with an ErrConflictDeclined error and
// leaves the filesystem as it was.
func (i *Installer) Install(origin, target string) (Outcome, error) {
	logger := i.logger.With().Str("origin", origin).Str("target", target).Logger()

	if i.verifier.IsCorrect(origin, target) {
		logger.Debug().Msg("Symlink already correct, skipping")
		return OutcomeUnchanged, nil
	}

	info, err := i.fs.Lstat(origin)
	switch {
	case os.IsNotExist(err):
		return i.create(origin, target, logger)
	case err != nil:
		return OutcomeUnchanged, errors.Wrap(err, errors.ErrFileAccess, "cannot inspect origin").
			WithDetail("origin", origin)
	case info.Mode()&os.ModeSymlink != 0:
		return i.replace(origin, target, logger)
	default:
		return i.move(origin, target, logger)
	}
}

func (i *Installer) create(origin, target string, logger zerolog.Logger) (Outcome, error) {
	if i.dryRun {
		logger.Info().Msg("Would create symlink")
		return OutcomeCreated, nil
	}
	if err := i.link(origin, target); err != nil {
		return OutcomeUnchanged, err
	}
	logger.Info().Msg("Created symlink")
	return OutcomeCreated, nil
}

func (i *Installer) replace(origin, target string, logger zerolog.Logger) (Outcome, error) {
	ok, err := i.ask(types.ConfirmationRequest{
		Prompt:  fmt.Sprintf("Replace %s?", origin),
		Default: true,
	})
	if err != nil {
		return OutcomeUnchanged, err
	}
	if !ok {
		return OutcomeDeclined, errors.New(errors.ErrConflictDeclined, "declined to replace existing symlink").
			WithDetail("origin", origin)
	}

	if i.dryRun {
		logger.Info().Msg("Would replace symlink")
		return OutcomeReplaced, nil
	}

	if err := i.fs.Remove(origin); err != nil {
		return OutcomeUnchanged, errors.Wrap(err, errors.ErrFileAccess, "cannot remove existing symlink").
			WithDetail("origin", origin)
	}
	if err := i.link(origin, target); err != nil {
		return OutcomeUnchanged, err
	}
	logger.Info().Msg("Replaced symlink")
	return OutcomeReplaced, nil
}

func (i *Installer) move(origin, target string, logger zerolog.Logger) (Outcome, error) {
	if _, err := i.fs.Lstat(target); err == nil {
		return OutcomeUnchanged, errors.New(errors.ErrTargetExists, "cannot move origin, target already exists").
			WithDetail("origin", origin).
			WithDetail("target", target)
	}

	ok, err := i.ask(types.ConfirmationRequest{
		Prompt:  fmt.Sprintf("Move %s to %s?", origin, target),
		Default: true,
	})
	if err != nil {
		return OutcomeUnchanged, err
	}
	if !ok {
		return OutcomeDeclined, errors.New(errors.ErrConflictDeclined, "declined to move existing file").
			WithDetail("origin", origin)
	}

	if i.dryRun {
		logger.Info().Msg("Would move origin to target and link it")
		return OutcomeMoved, nil
	}

	if err := i.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return OutcomeUnchanged, errors.Wrap(err, errors.ErrDirCreate, "cannot create target directory").
			WithDetail("target", target)
	}
	if err := i.fs.Rename(origin, target); err != nil {
		return OutcomeUnchanged, errors.Wrap(err, errors.ErrFileAccess, "cannot move origin to target").
			WithDetail("origin", origin).
			WithDetail("target", target)
	}
	if err := i.link(origin, target); err != nil {
		return OutcomeMoved, err
	}
	logger.Info().Msg("Moved origin to target and linked it")
	return OutcomeMoved, nil
}

// ask returns the default without prompting in dry-run mode
func (i *Installer) ask(req types.ConfirmationRequest) (bool, error) {
	if i.dryRun {
		return req.Default, nil
	}
	ok, err := req.Ask(i.confirm)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "confirmation failed")
	}
	return ok, nil
}

// link creates origin's parent directories and the symlink itself
func (i *Installer) link(origin, target string) error {
	if err := i.fs.MkdirAll(filepath.Dir(origin), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create origin directory").
			WithDetail("origin", origin)
	}
	if err := i.fs.Symlink(target, origin); err != nil {
		return errors.Wrap(err, errors.ErrSymlinkCreate, "cannot create symlink").
			WithDetail("origin", origin).
			WithDetail("target", target)
	}
	return nil
}
