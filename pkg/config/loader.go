package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/metov/dotstree/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "DOTS_"

	// EnvConfigFile points at an alternative user config file
	EnvConfigFile = "DOTS_CONFIG"

	// UserConfigFile is searched under the XDG config directories
	UserConfigFile = "dotstree/config.toml"

	// RootConfigFile is read from the root of the scanned tree
	RootConfigFile = ".dotstree.toml"
)

// Options selects the optional layers of Load
type Options struct {
	// Root is the scanned tree; its .dotstree.toml is loaded when present
	Root string

	// Overrides are dotted keys applied last, e.g. "install.assume_yes"
	Overrides map[string]interface{}
}

// Default returns the embedded defaults only
func Default() *Config {
	k, err := newKoanf()
	if err == nil {
		var cfg *Config
		if cfg, err = unmarshal(k); err == nil {
			return cfg
		}
	}
	panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
}

// Load builds the effective configuration
func Load(opts Options) (*Config, error) {
	// 1. Defaults
	k, err := newKoanf()
	if err != nil {
		return nil, err
	}

	// 2. User config
	if path := userConfigPath(); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load user config").
				WithDetail("path", path)
		}
	}

	// 3. Root config
	if opts.Root != "" {
		path := filepath.Join(opts.Root, RootConfigFile)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load root config").
					WithDetail("path", path)
			}
		}
	}

	// 4. Env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return unmarshal(k)
}

// newKoanf returns a koanf instance holding the embedded defaults
func newKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	return k, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DOTS_INSTALL__ASSUME_YES to install.assume_yes
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// userConfigPath returns the user config file, or "" when there is none
func userConfigPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	path, err := xdg.SearchConfigFile(UserConfigFile)
	if err != nil {
		return ""
	}
	return path
}
