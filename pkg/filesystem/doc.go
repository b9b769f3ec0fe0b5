// Package filesystem provides filesystem implementations for dotstree.
//
// The installer and verifier only talk to types.FS, so tests can wrap the
// OS implementation to inject failures. NewAferoFS adapts any afero.Fs,
// which lets discovery run against an in-memory tree.
package filesystem
