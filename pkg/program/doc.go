// Package program runs the check and install commands a spec declares.
//
// Commands go through the configured shell (sh -c by default) with the
// spec directory as working directory. A check passes iff it exits 0. In
// install mode a passing check skips the install command, so re-running an
// install over a configured machine does no work.
package program
