package report

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress is advanced once per spec while checking
type Progress interface {
	ChangeMax(newMax int)
	Describe(description string)
	Add(n int) error
	Finish() error
}

// NewProgress returns a bar over total specs written to w. A nil w gives
// a bar that draws nothing. A negative total draws a spinner until
// ChangeMax sets it.
func NewProgress(total int, w io.Writer) Progress {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("checking"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(0),
	)
}
