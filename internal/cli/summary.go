package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/tessro/weekly/internal/report"
)

// summaryTitleWidth caps issue titles in the terminal summary.
const summaryTitleWidth = 50

// Status colors for the terminal summary.
var statusColors = map[string]lipgloss.Color{
	report.StatusOpen:             lipgloss.Color("#9CA3AF"),
	report.StatusReopened:         lipgloss.Color("#F59E0B"),
	report.StatusInProgress:       lipgloss.Color("#3B82F6"),
	report.StatusNeedReview:       lipgloss.Color("#A855F7"),
	report.StatusReviewInProgress: lipgloss.Color("#EC4899"),
	report.StatusDone:             lipgloss.Color("#22C55E"),
}

// printSummary writes a compact, styled view of the kept rows to w.
func printSummary(w io.Writer, res *report.Result) {
	r := lipgloss.NewRenderer(w)

	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	dim := r.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	index := r.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.Color("#6B7280"))
	status := r.NewStyle().Width(20)
	deadline := r.NewStyle().Width(12)

	_, _ = fmt.Fprintln(w, header.Render(fmt.Sprintf("Week %s to %s", res.Window[0], res.Window.Today())))
	_, _ = fmt.Fprintln(w, dim.Render(fmt.Sprintf("%d of %d issues kept", len(res.Kept), len(res.Extracted))))

	for i, rec := range res.Kept {
		label := valueOr(rec.ProjectStatus)
		st := status
		if c, ok := statusColors[label]; ok {
			st = st.Foreground(c)
		}
		title := truncate.StringWithTail(rec.Title, summaryTitleWidth, "...")
		_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			index.Render(strconv.Itoa(i+1)), "  ",
			st.Render(label),
			deadline.Render(valueOr(rec.Deadline)),
			title,
		))
	}
}

func valueOr(s *string) string {
	if s == nil {
		return report.NonePlaceholder
	}
	return *s
}
