package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/metov/dotstree/pkg/types"
	"github.com/metov/dotstree/pkg/ui"
	"github.com/muesli/termenv"
)

var (
	successColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	errorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	mutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}
)

// StatusIcon is the report cell for a status
func StatusIcon(s types.Status) string {
	switch s {
	case types.StatusPass:
		return "🟢"
	case types.StatusFail:
		return "🔴"
	default:
		return "⚪"
	}
}

// StatusLabel is the plain-text report cell for a status
func StatusLabel(s types.Status) string {
	switch s {
	case types.StatusPass:
		return "ok"
	case types.StatusFail:
		return "FAIL"
	default:
		return "-"
	}
}

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// newStyles binds the report styles to w. Text output gets the ASCII
// profile so no escape sequences leak into files or pipes.
func newStyles(w io.Writer, format ui.Format) styles {
	r := lipgloss.NewRenderer(w)
	if format != ui.FormatTerminal {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		success: r.NewStyle().Foreground(successColor).Bold(true),
		failure: r.NewStyle().Foreground(errorColor).Bold(true),
		muted:   r.NewStyle().Foreground(mutedColor),
	}
}
