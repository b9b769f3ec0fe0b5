package types

import (
	"path"
	"strings"
)

// RootKey is the SpecTree key of a spec found directly in the scan root
const RootKey = "/"

// Symlink is one declared link. From is where the link lives, exactly as
// written in the spec (a leading ~ is expanded only when used). To is the
// absolute, canonical path the link points at.
type Symlink struct {
	From string
	To   string
}

// Spec is a loaded spec file: the desired links and commands of one program
type Spec struct {
	// Key is the spec directory relative to the scan root
	Key string

	// Path is the absolute directory containing the spec file
	Path string

	// File is the absolute path of the spec file that was read
	File string

	// Symlinks in declaration order
	Symlinks []Symlink

	// HasSymlinks is true when the document has a symlinks key, even an
	// empty one. Checking links is skipped entirely when it is false.
	HasSymlinks bool

	// Check is the optional shell command that tells whether the program
	// is already set up
	Check *string

	// Install is the optional shell command that sets the program up
	Install *string

	// Extra holds keys dotstree does not interpret
	Extra map[string]interface{}
}

// HasCheck reports whether a check command is declared
func (s *Spec) HasCheck() bool {
	return s.Check != nil
}

// HasInstall reports whether an install command is declared
func (s *Spec) HasInstall() bool {
	return s.Install != nil
}

// Layer is the part of the key before the last slash, empty for top-level specs
func (s *Spec) Layer() string {
	layer, _ := SplitKey(s.Key)
	return layer
}

// Name is the last element of the key
func (s *Spec) Name() string {
	_, name := SplitKey(s.Key)
	return name
}

// SplitKey splits a tree key into its layer and name
func SplitKey(key string) (layer, name string) {
	if key == RootKey {
		return "", ""
	}
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return "", key
	}
	return key[:i], key[i+1:]
}

// KeyFromRel turns a slash-separated relative directory into a tree key
func KeyFromRel(rel string) string {
	rel = path.Clean(rel)
	if rel == "." || rel == "" {
		return RootKey
	}
	return rel
}
