package config

import (
	"github.com/metov/dotstree/pkg/errors"
)

// Config is the complete dotstree configuration
type Config struct {
	Specs   Specs   `koanf:"specs" toml:"specs"`
	Shell   Shell   `koanf:"shell" toml:"shell"`
	Install Install `koanf:"install" toml:"install"`
}

// Specs controls spec discovery
type Specs struct {
	// Filenames are the recognized spec file names in priority order
	Filenames []string `koanf:"filenames" toml:"filenames"`
	// SkipDirs are directory names the locator never enters
	SkipDirs []string `koanf:"skip_dirs" toml:"skip_dirs"`
}

// Shell selects the interpreter for check and install commands
type Shell struct {
	Command string `koanf:"command" toml:"command"`
	Flag    string `koanf:"flag" toml:"flag"`
}

// Install holds install-mode settings
type Install struct {
	AssumeYes bool   `koanf:"assume_yes" toml:"assume_yes"`
	Lock      string `koanf:"lock" toml:"lock"`
}

// Validate checks the values the engine cannot work without
func (c *Config) Validate() error {
	if len(c.Specs.Filenames) == 0 {
		return errors.New(errors.ErrConfigParse, "specs.filenames must not be empty")
	}
	for _, name := range c.Specs.Filenames {
		if name == "" {
			return errors.New(errors.ErrConfigParse, "specs.filenames contains an empty name")
		}
	}
	if c.Shell.Command == "" {
		return errors.New(errors.ErrConfigParse, "shell.command must not be empty")
	}
	return nil
}

// ShellArgs returns the argv that runs line through the configured shell
func (c *Config) ShellArgs(line string) []string {
	args := []string{c.Shell.Command}
	if c.Shell.Flag != "" {
		args = append(args, c.Shell.Flag)
	}
	return append(args, line)
}

// SkipsDir reports whether the locator must not descend into name
func (c *Config) SkipsDir(name string) bool {
	for _, skip := range c.Specs.SkipDirs {
		if skip == name {
			return true
		}
	}
	return false
}
