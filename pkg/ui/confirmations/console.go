// Package confirmations provides the types.Confirmer implementations used
// to resolve symlink conflicts.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/metov/dotstree/pkg/types"
	"github.com/metov/dotstree/pkg/ui"
	"github.com/pterm/pterm"
)

// Console asks on a plain line-oriented stream. It is used when stdin is
// not a terminal, so answers can be piped in. End of input takes the
// default.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console confirmer over the given streams
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm implements types.Confirmer
func (c *Console) Confirm(prompt string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	if _, err := fmt.Fprintf(c.out, "%s %s: ", prompt, marker); err != nil {
		return false, err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(line))
	if err == io.EOF && response == "" {
		_, _ = fmt.Fprintln(c.out)
	}
	switch response {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Interactive asks with a pterm confirm prompt
func Interactive(prompt string, def bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(def).
		Show(prompt)
}

// AutoConfirm accepts every default without asking
func AutoConfirm(prompt string, def bool) (bool, error) {
	return def, nil
}

// Choose picks the confirmer for a run: assumeYes auto-confirms, a
// terminal on stdin gets the interactive prompt, anything else reads
// answers line by line.
func Choose(assumeYes bool, in *os.File, out io.Writer) types.Confirmer {
	switch {
	case assumeYes:
		return AutoConfirm
	case ui.IsTerminal(in):
		return Interactive
	default:
		return NewConsole(in, out).Confirm
	}
}
