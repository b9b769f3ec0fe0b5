// Package symlinks verifies and installs the links a spec declares.
//
// A link has an origin (where the link itself lives, usually under the
// home directory) and a target (the file in the spec tree it points to).
// Verifier.IsCorrect decides whether the filesystem already satisfies a
// declaration. Installer.Install makes it so, asking through an injected
// types.Confirmer before replacing a foreign link or relocating an
// existing file or directory to the target path.
package symlinks
