// Package ui holds what the terminal-facing packages share: the output
// format selection. Rendering lives in ui/report, prompting in
// ui/confirmations.
package ui
