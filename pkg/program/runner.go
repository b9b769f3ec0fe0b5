package program

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/errors"
	"github.com/rs/zerolog"
)

// Command is one shell line to run
type Command struct {
	// Line is handed to the shell verbatim
	Line string

	// Dir is the working directory
	Dir string

	// Capture buffers stdout and stderr instead of passing them to the
	// terminal. Stderr is collected in both modes.
	Capture bool
}

// Result is what a finished command left behind
type Result struct {
	Command  string
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Success reports a zero exit code
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// RunnerOptions configures a Runner
type RunnerOptions struct {
	Config *config.Config
	Logger zerolog.Logger

	// Stdout and Stderr receive streamed output. They default to the
	// process' own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes shell lines
type Runner struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

// NewRunner creates a runner
func NewRunner(opts RunnerOptions) *Runner {
	r := &Runner{
		cfg:    opts.Config,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		logger: opts.Logger,
	}
	if r.cfg == nil {
		r.cfg = config.Default()
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	return r
}

// Run executes cmd and waits for it. A non-zero exit is not an error: it
// is reported through Result.ExitCode. Errors mean the shell could not be
// started or the context ended.
func (r *Runner) Run(ctx context.Context, cmd Command) (Result, error) {
	args := r.cfg.ShellArgs(cmd.Line)
	result := Result{Command: cmd.Line, Dir: cmd.Dir}

	r.logger.Debug().
		Str("command", cmd.Line).
		Str("dir", cmd.Dir).
		Bool("capture", cmd.Capture).
		Msg("Running command")

	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin

	var stdout, stderr bytes.Buffer
	if cmd.Capture {
		c.Stdin = nil
		c.Stdout = &stdout
		c.Stderr = &stderr
	} else {
		c.Stdout = r.stdout
		c.Stderr = io.MultiWriter(r.stderr, &stderr)
	}

	start := time.Now()
	err := c.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, errors.Wrapf(ctxErr, errors.ErrCommandFailed, "command interrupted: %s", cmd.Line)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		r.logger.Debug().
			Str("command", cmd.Line).
			Int("exitCode", result.ExitCode).
			Msg("Command exited with non-zero status")
		return result, nil
	}

	result.ExitCode = -1
	return result, errors.Wrapf(err, errors.ErrCommandFailed, "cannot run command: %s", cmd.Line).
		WithDetail("shell", strings.Join(args[:len(args)-1], " ")).
		WithDetail("dir", cmd.Dir)
}
