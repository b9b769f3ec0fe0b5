// Package config handles configuration management for dotstree.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/dotstree/config.toml
//     or the file named by DOTS_CONFIG
//  3. .dotstree.toml at the root of the scanned tree
//  4. DOTS_ environment variables, with a double underscore separating
//     sections from keys (DOTS_INSTALL__ASSUME_YES=true)
//  5. command-line overrides
package config
