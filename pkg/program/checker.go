package program

import (
	"context"

	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/types"
	"github.com/rs/zerolog"
)

// InstallOutcome says what Checker.Install did
type InstallOutcome int

const (
	// InstallNotDeclared means the spec has no install command
	InstallNotDeclared InstallOutcome = iota
	// InstallSatisfied means the check passed so install was skipped
	InstallSatisfied
	// InstallRan means the install command ran and exited 0
	InstallRan
	// InstallFailed means the install command could not run or exited non-zero
	InstallFailed
)

func (o InstallOutcome) String() string {
	switch o {
	case InstallSatisfied:
		return "satisfied"
	case InstallRan:
		return "installed"
	case InstallFailed:
		return "failed"
	default:
		return "none"
	}
}

// Checker runs a spec's check and install commands
type Checker struct {
	runner *Runner
	dryRun bool
	logger zerolog.Logger
}

// CheckerOptions configures a Checker
type CheckerOptions struct {
	Runner *Runner
	Logger zerolog.Logger

	// DryRun still runs check commands but never install commands
	DryRun bool
}

// NewChecker creates a checker
func NewChecker(opts CheckerOptions) *Checker {
	return &Checker{runner: opts.Runner, dryRun: opts.DryRun, logger: opts.Logger}
}

// Check runs the spec's check command with captured output. Without a
// check command the status is StatusNone.
func (c *Checker) Check(ctx context.Context, spec *types.Spec) (types.Status, Result) {
	if !spec.HasCheck() {
		return types.StatusNone, Result{}
	}

	result, err := c.runner.Run(ctx, Command{Line: *spec.Check, Dir: spec.Path, Capture: true})
	if err != nil {
		c.logger.Error().Err(err).Str("spec", spec.Key).Msg("Check command could not run")
		return types.StatusFail, result
	}
	if !result.Success() {
		c.logger.Info().
			Str("spec", spec.Key).
			Str("command", result.Command).
			Int("exitCode", result.ExitCode).
			Str("stdout", result.Stdout).
			Str("stderr", result.Stderr).
			Msg("Check failed")
		return types.StatusFail, result
	}
	return types.StatusPass, result
}

// Install runs the spec's install command unless its check already
// passes. Output streams to the terminal. A failure is logged with the
// command and its stderr and returned as ErrCommandFailed.
func (c *Checker) Install(ctx context.Context, spec *types.Spec) (InstallOutcome, error) {
	if !spec.HasInstall() {
		return InstallNotDeclared, nil
	}

	if spec.HasCheck() {
		if status, _ := c.Check(ctx, spec); status == types.StatusPass {
			c.logger.Info().Msgf("Skipping %s because check command succeeded", spec.Key)
			return InstallSatisfied, nil
		}
	}

	if c.dryRun {
		c.logger.Info().Str("command", *spec.Install).Msgf("Would install %s", spec.Key)
		return InstallRan, nil
	}

	c.logger.Info().Msgf("Installing %s", spec.Key)
	result, err := c.runner.Run(ctx, Command{Line: *spec.Install, Dir: spec.Path})
	if err == nil && !result.Success() {
		err = errors.Newf(errors.ErrCommandFailed, "%s failed with exit code %d", result.Command, result.ExitCode).
			WithDetail("spec", spec.Key).
			WithDetail("exitCode", result.ExitCode).
			WithDetail("stderr", result.Stderr)
	}
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("spec", spec.Key).
			Str("command", result.Command).
			Str("stderr", result.Stderr).
			Msg("Install command failed")
		return InstallFailed, err
	}
	return InstallRan, nil
}
