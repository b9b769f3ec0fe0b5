// Package types defines the core types and interfaces used throughout dotstree.
// This includes the Spec record and its symlink declarations, the ordered
// SpecTree built from a scan, the tri-state Status reported by checks, and
// the FS and Confirmer capabilities injected into the installer.
package types
