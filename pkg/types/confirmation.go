package types

// Confirmer asks a yes/no question before a destructive step.
// def is the answer used when the user just presses enter, and the
// answer non-interactive implementations should return.
type Confirmer func(prompt string, def bool) (bool, error)

// ConfirmationRequest describes one question put to the user
type ConfirmationRequest struct {
	// Prompt is the question text, e.g. "Replace /home/me/.bashrc?"
	Prompt string

	// Default indicates the default response if user just presses enter
	Default bool
}

// Ask presents the request through the given Confirmer
func (r ConfirmationRequest) Ask(confirm Confirmer) (bool, error) {
	if confirm == nil {
		return r.Default, nil
	}
	return confirm(r.Prompt, r.Default)
}
