package commands

import (
	"context"
	"time"

	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/logging"
	"github.com/metov/dotstree/pkg/program"
	"github.com/metov/dotstree/pkg/symlinks"
	"github.com/metov/dotstree/pkg/types"
	"github.com/metov/dotstree/pkg/ui/report"
)

// CheckSpecsOptions defines the options for the CheckSpecs command.
type CheckSpecsOptions struct {
	// Root is the directory tree to scan
	Root string
	// Config defaults to the embedded defaults
	Config *config.Config
	// FS defaults to the real filesystem
	FS types.FS
	// Progress is advanced once per spec when set
	Progress report.Progress
}

// CheckResult holds one report row per spec in tree order
type CheckResult struct {
	Root string
	Rows []report.Row
}

// Failed reports whether any spec failed a check
func (r *CheckResult) Failed() bool {
	return report.Summarize(r.Rows).Failed > 0
}

// CheckSpecs verifies the symlinks of every spec and runs its check
// command. Nothing on disk is changed.
func CheckSpecs(ctx context.Context, opts CheckSpecsOptions) (*CheckResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "CheckSpecs").Str("root", opts.Root).Msg("Executing command")
	start := time.Now()

	fs, cfg := defaults(opts.FS, opts.Config)
	tree, err := loadTree(opts.Root, fs, cfg)
	if err != nil {
		return nil, err
	}

	verifier := symlinks.NewVerifier(fs, logging.GetLogger("symlinks"))
	checker := program.NewChecker(program.CheckerOptions{
		Runner: program.NewRunner(program.RunnerOptions{Config: cfg, Logger: logging.GetLogger("program")}),
		Logger: logging.GetLogger("program"),
	})

	if opts.Progress != nil {
		opts.Progress.ChangeMax(tree.Len())
	}

	result := &CheckResult{Root: opts.Root, Rows: make([]report.Row, 0, tree.Len())}
	for _, spec := range tree.Specs() {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, errors.ErrInternal, "check interrupted")
		}
		if opts.Progress != nil {
			opts.Progress.Describe(spec.Key)
		}

		row := report.Row{Layer: spec.Layer(), Spec: displayName(spec)}

		t1 := time.Now()
		row.Symlinks = verifier.Status(spec)
		t2 := time.Now()
		row.Program, _ = checker.Check(ctx, spec)
		t3 := time.Now()

		row.SymlinkTime = t2.Sub(t1)
		row.CheckTime = t3.Sub(t2)
		result.Rows = append(result.Rows, row)

		if opts.Progress != nil {
			_ = opts.Progress.Add(1)
		}
	}
	if opts.Progress != nil {
		_ = opts.Progress.Finish()
	}

	logging.LogDuration(log, start, "CheckSpecs")
	log.Info().Str("command", "CheckSpecs").Int("specs", len(result.Rows)).Msg("Command finished")
	return result, nil
}
