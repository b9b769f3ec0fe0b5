package dots

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A dotfile manager based on directory trees"
	MsgCheckShort      = "Report the state of every spec"
	MsgInstallShort    = "Create symlinks and run install commands"
	MsgConfigShort     = "Print the effective configuration"
	MsgFormatShort     = "Describe the spec file format"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice   = "\nDRY RUN MODE - No changes were made"
	MsgNoSpecsFound   = "No specs found under %s\n"
	MsgInstallSummary = "\n%d specs: %d symlinks changed, %d installed, %d already set up\n"
	MsgLinkFailure    = "  ✗ %s -> %s: %v\n"
	MsgSpecFailure    = "  ✗ %s: %v\n"

	// Error messages
	MsgErrInstallFailures = "%d failures during install"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagLog     = "Minimum level of logs to print (overrides -v)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagYes     = "Answer every prompt with its default"
	MsgFlagFormat  = "Output format: auto, term, text or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/spec-format.md
	MsgSpecFormat string
)
