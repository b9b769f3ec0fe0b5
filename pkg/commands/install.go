package commands

import (
	"context"
	"io"
	"time"

	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/lock"
	"github.com/metov/dotstree/pkg/logging"
	"github.com/metov/dotstree/pkg/paths"
	"github.com/metov/dotstree/pkg/program"
	"github.com/metov/dotstree/pkg/symlinks"
	"github.com/metov/dotstree/pkg/types"
)

// InstallSpecsOptions defines the options for the InstallSpecs command.
type InstallSpecsOptions struct {
	// Root is the directory tree to scan
	Root string
	// Config defaults to the embedded defaults
	Config *config.Config
	// FS defaults to the real filesystem
	FS types.FS
	// Confirm resolves symlink conflicts. Nil takes every default.
	Confirm types.Confirmer
	// DryRun reports what would change without changing anything
	DryRun bool
	// Stdout and Stderr receive install command output
	Stdout io.Writer
	Stderr io.Writer
}

// LinkResult is what happened to one declared symlink
type LinkResult struct {
	Origin  string
	Target  string
	Outcome symlinks.Outcome
	Err     error
}

// SpecResult is what happened to one spec
type SpecResult struct {
	Key     string
	Links   []LinkResult
	Program program.InstallOutcome
	Err     error
}

// Failed reports whether a link or the install command failed
func (s SpecResult) Failed() bool {
	if s.Err != nil {
		return true
	}
	for _, l := range s.Links {
		if l.Err != nil {
			return true
		}
	}
	return false
}

// InstallSummary counts the results of a run
type InstallSummary struct {
	Specs          int
	LinksChanged   int
	LinkFailures   int
	Installed      int
	Satisfied      int
	InstallFailures int
}

// Failures is the number of links and commands that did not succeed
func (s InstallSummary) Failures() int {
	return s.LinkFailures + s.InstallFailures
}

// InstallResult holds one entry per spec in tree order
type InstallResult struct {
	Root   string
	DryRun bool
	Specs  []SpecResult
}

// Summary counts link and command outcomes
func (r *InstallResult) Summary() InstallSummary {
	s := InstallSummary{Specs: len(r.Specs)}
	for _, spec := range r.Specs {
		for _, l := range spec.Links {
			switch {
			case l.Err != nil:
				s.LinkFailures++
			case l.Outcome.Changed():
				s.LinksChanged++
			}
		}
		switch spec.Program {
		case program.InstallRan:
			s.Installed++
		case program.InstallSatisfied:
			s.Satisfied++
		case program.InstallFailed:
			s.InstallFailures++
		}
	}
	return s
}

// InstallSpecs installs every spec: first its symlinks in declared order,
// then its install command unless the check command already passes. A
// failing link or command is logged and counted, and the run moves on.
func InstallSpecs(ctx context.Context, opts InstallSpecsOptions) (*InstallResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "InstallSpecs").Str("root", opts.Root).Bool("dryRun", opts.DryRun).Msg("Executing command")
	start := time.Now()

	fs, cfg := defaults(opts.FS, opts.Config)

	if !opts.DryRun {
		l, err := lock.Acquire(cfg.Install.Lock)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := l.Release(); err != nil {
				log.Warn().Err(err).Msg("Failed to release install lock")
			}
		}()
	}

	tree, err := loadTree(opts.Root, fs, cfg)
	if err != nil {
		return nil, err
	}

	installer := symlinks.NewInstaller(symlinks.InstallerOptions{
		FS:      fs,
		Confirm: opts.Confirm,
		Logger:  logging.GetLogger("symlinks"),
		DryRun:  opts.DryRun,
	})
	checker := program.NewChecker(program.CheckerOptions{
		Runner: program.NewRunner(program.RunnerOptions{
			Config: cfg,
			Logger: logging.GetLogger("program"),
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
		}),
		Logger: logging.GetLogger("program"),
		DryRun: opts.DryRun,
	})

	result := &InstallResult{Root: opts.Root, DryRun: opts.DryRun, Specs: make([]SpecResult, 0, tree.Len())}
	for _, spec := range tree.Specs() {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, errors.ErrInternal, "install interrupted")
		}

		sr := SpecResult{Key: spec.Key}
		for _, link := range spec.Symlinks {
			origin := paths.ExpandHome(link.From)
			outcome, err := installer.Install(origin, link.To)
			if err != nil {
				log.Error().
					Err(err).
					Str("spec", spec.Key).
					Str("origin", origin).
					Str("target", link.To).
					Msg("Symlink not installed")
			}
			sr.Links = append(sr.Links, LinkResult{Origin: origin, Target: link.To, Outcome: outcome, Err: err})
		}

		sr.Program, sr.Err = checker.Install(ctx, spec)
		result.Specs = append(result.Specs, sr)
	}

	summary := result.Summary()
	logging.LogDuration(log, start, "InstallSpecs")
	log.Info().
		Str("command", "InstallSpecs").
		Int("specs", summary.Specs).
		Int("linksChanged", summary.LinksChanged).
		Int("failures", summary.Failures()).
		Msg("Command finished")
	return result, nil
}
