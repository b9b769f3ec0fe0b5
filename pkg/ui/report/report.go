// Package report renders the result of dots check.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/metov/dotstree/pkg/errors"
	"github.com/metov/dotstree/pkg/types"
	"github.com/metov/dotstree/pkg/ui"
)

// Row is the check result of one spec
type Row struct {
	Layer       string        `json:"layer"`
	Spec        string        `json:"spec"`
	Symlinks    types.Status  `json:"-"`
	Program     types.Status  `json:"-"`
	SymlinkTime time.Duration `json:"-"`
	CheckTime   time.Duration `json:"-"`
}

// Failed reports whether any part of the row failed
func (r Row) Failed() bool {
	return r.Symlinks == types.StatusFail || r.Program == types.StatusFail
}

// Sort orders rows for display: the root layer first, then by layer;
// within a layer passing symlinks, then failing, then unchecked; the
// program column breaks ties the same way, then the spec name.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.Layer != "") != (b.Layer != "") {
			return a.Layer == ""
		}
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if rank(a.Symlinks) != rank(b.Symlinks) {
			return rank(a.Symlinks) < rank(b.Symlinks)
		}
		if rank(a.Program) != rank(b.Program) {
			return rank(a.Program) < rank(b.Program)
		}
		return a.Spec < b.Spec
	})
}

func rank(s types.Status) int {
	switch s {
	case types.StatusPass:
		return 0
	case types.StatusFail:
		return 1
	default:
		return 2
	}
}

// Summary counts rows
type Summary struct {
	Total  int `json:"total"`
	Failed int `json:"failed"`
}

// Summarize counts total and failing rows
func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		if r.Failed() {
			s.Failed++
		}
	}
	return s
}

// Render writes the sorted rows to w in the given format. FormatAuto must
// be resolved by the caller.
func Render(w io.Writer, rows []Row, format ui.Format) error {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	Sort(sorted)

	switch format {
	case ui.FormatJSON:
		return renderJSON(w, sorted)
	case ui.FormatTerminal, ui.FormatText:
		return renderTable(w, sorted, format)
	default:
		return errors.Newf(errors.ErrInvalidInput, "cannot render report as %s", format)
	}
}

func renderTable(w io.Writer, rows []Row, format ui.Format) error {
	st := newStyles(w, format)
	cell := StatusLabel
	if format == ui.FormatTerminal {
		cell = StatusIcon
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	if format == ui.FormatTerminal {
		tw.SetStyle(table.StyleRounded)
	}
	tw.AppendHeader(table.Row{"Layer", "Spec", "Symlinks", "Program", "Symlink time", "Check time"})
	for _, r := range rows {
		tw.AppendRow(table.Row{
			st.muted.Render(r.Layer),
			r.Spec,
			cell(r.Symlinks),
			cell(r.Program),
			seconds(r.SymlinkTime),
			seconds(r.CheckTime),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignCenter},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}

	summary := Summarize(rows)
	line := st.success.Render(fmt.Sprintf("%d specs, all passing", summary.Total))
	if summary.Failed > 0 {
		line = st.failure.Render(fmt.Sprintf("%d specs, %d failing", summary.Total, summary.Failed))
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

type jsonRow struct {
	Row
	SymlinksStatus string  `json:"symlinks"`
	ProgramStatus  string  `json:"program"`
	SymlinkSeconds float64 `json:"symlink_time"`
	CheckSeconds   float64 `json:"check_time"`
}

func renderJSON(w io.Writer, rows []Row) error {
	out := struct {
		Specs   []jsonRow `json:"specs"`
		Summary Summary   `json:"summary"`
	}{Specs: make([]jsonRow, 0, len(rows)), Summary: Summarize(rows)}

	for _, r := range rows {
		out.Specs = append(out.Specs, jsonRow{
			Row:            r,
			SymlinksStatus: r.Symlinks.String(),
			ProgramStatus:  r.Program.String(),
			SymlinkSeconds: r.SymlinkTime.Seconds(),
			CheckSeconds:   r.CheckTime.Seconds(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
