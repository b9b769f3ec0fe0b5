// Package paths provides centralized path handling for dotstree.
//
// Spec files declare link targets relative to the spec directory and link
// locations relative to the user's home. Everything that turns those
// declarations into absolute, comparable paths lives here:
//
//   - ExpandHome resolves a leading ~ at use time
//   - Resolve canonicalizes a path the way the verifier compares them:
//     absolute, cleaned, with every existing symlink along the way
//     resolved and any missing tail kept verbatim
//   - ResolveTarget applies the spec file rule for "to" declarations
//   - FindRoot picks the tree to scan when none is given
package paths
