// Package dots implements the dots command line.
package dots

import (
	"fmt"

	"github.com/metov/dotstree/internal/version"
	"github.com/metov/dotstree/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		logLevel  string
	)

	rootCmd := &cobra.Command{
		Use:     "dots",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.SetupLogger(verbosity, logLevel); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", MsgFlagLog)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf("dots %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
