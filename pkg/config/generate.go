package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/metov/dotstree/pkg/errors"
)

// TOML renders the configuration in the format the config files use
func (c *Config) TOML() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
