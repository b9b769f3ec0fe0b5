// Package testutil provides an isolated filesystem environment for tests
// that drive whole commands: a dotfiles tree, a fake home directory and
// private state and config locations.
package testutil
