package dots

import (
	"fmt"
	"io"
	"os"

	"github.com/metov/dotstree/pkg/commands"
	"github.com/metov/dotstree/pkg/config"
	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/paths"
	"github.com/metov/dotstree/pkg/ui"
	"github.com/metov/dotstree/pkg/ui/confirmations"
	"github.com/metov/dotstree/pkg/ui/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loadRoot resolves the PATH argument and the configuration for that tree
func loadRoot(args []string, overrides map[string]interface{}) (string, *config.Config, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	root, err := paths.FindRoot(arg)
	if err != nil {
		return "", nil, err
	}

	cfg, err := config.Load(config.Options{Root: root, Overrides: overrides})
	if err != nil {
		return "", nil, err
	}
	log.Debug().Str("root", root).Msg("Using dotfiles root")
	return root, cfg, nil
}

// outputFormat resolves --format against where the output goes
func outputFormat(name string, out io.Writer) (ui.Format, error) {
	format, err := ui.ParseFormat(name)
	if err != nil {
		return format, err
	}
	if format != ui.FormatAuto {
		return format, nil
	}
	if f, ok := out.(*os.File); ok {
		return format.Resolve(f), nil
	}
	return ui.FormatText, nil
}

func newCheckCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:     "check [PATH]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(formatName, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			root, cfg, err := loadRoot(args, nil)
			if err != nil {
				return err
			}

			var progress report.Progress
			if format != ui.FormatJSON && ui.IsTerminal(os.Stderr) {
				progress = report.NewProgress(-1, os.Stderr)
			}

			result, err := commands.CheckSpecs(cmd.Context(), commands.CheckSpecsOptions{
				Root:     root,
				Config:   cfg,
				Progress: progress,
			})
			if err != nil {
				return err
			}

			if len(result.Rows) == 0 && format != ui.FormatJSON {
				fmt.Fprintf(cmd.OutOrStdout(), MsgNoSpecsFound, root)
				return nil
			}
			return report.Render(cmd.OutOrStdout(), result.Rows, format)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "auto", MsgFlagFormat)
	return cmd
}

func newInstallCmd() *cobra.Command {
	var (
		dryRun    bool
		assumeYes bool
	)

	cmd := &cobra.Command{
		Use:     "install [PATH]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if assumeYes {
				overrides["install.assume_yes"] = true
			}
			root, cfg, err := loadRoot(args, overrides)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, err := commands.InstallSpecs(cmd.Context(), commands.InstallSpecsOptions{
				Root:    root,
				Config:  cfg,
				Confirm: confirmations.Choose(cfg.Install.AssumeYes, os.Stdin, out),
				DryRun:  dryRun,
				Stdout:  out,
				Stderr:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			printInstallResult(out, result)

			summary := result.Summary()
			if summary.Failures() > 0 {
				return errors.Newf(errors.ErrCommandFailed, MsgErrInstallFailures, summary.Failures())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, MsgFlagYes)
	return cmd
}

func printInstallResult(out io.Writer, result *commands.InstallResult) {
	if len(result.Specs) == 0 {
		fmt.Fprintf(out, MsgNoSpecsFound, result.Root)
		return
	}

	for _, spec := range result.Specs {
		for _, link := range spec.Links {
			if link.Err != nil {
				fmt.Fprintf(out, MsgLinkFailure, link.Origin, link.Target, link.Err)
			}
		}
		if spec.Err != nil {
			fmt.Fprintf(out, MsgSpecFailure, spec.Key, spec.Err)
		}
	}

	summary := result.Summary()
	fmt.Fprintf(out, MsgInstallSummary, summary.Specs, summary.LinksChanged, summary.Installed, summary.Satisfied)
	if result.DryRun {
		fmt.Fprintln(out, MsgDryRunNotice)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config [PATH]",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadRoot(args, nil)
			if err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "format",
		Short:   MsgFormatShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat("auto", cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(MsgSpecFormat, format))
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
