package report

import (
	"log/slog"
	"time"

	"github.com/tessro/weekly/internal/github"
)

// Result is the outcome of one pipeline run.
type Result struct {
	Extracted []Record // every record, in response order
	Kept      []Record // selected and ranked records
	Window    Window
	Markdown  []byte
}

// Params configure a pipeline run.
type Params struct {
	Author   string
	Now      time.Time
	Location *time.Location
}

// Build runs Extract, Select, Rank and Render over a query response.
func Build(data *github.IssuesData, p Params) (*Result, error) {
	var edges []github.IssueEdge
	if data != nil && data.Repository != nil {
		edges = data.Repository.Issues.Edges
	}

	extracted, err := Extract(edges)
	if err != nil {
		return nil, err
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	window := NewWindow(p.Now, loc)
	kept := Rank(Select(extracted, window))

	slog.Debug("report pipeline",
		"extracted", len(extracted),
		"kept", len(kept),
		"window_start", window[0],
		"window_end", window.Today(),
	)

	return &Result{
		Extracted: extracted,
		Kept:      kept,
		Window:    window,
		Markdown: Render(Document{
			Author:  p.Author,
			Date:    p.Now.In(loc),
			Records: kept,
		}),
	}, nil
}

// FileName returns the report file name for the window's last date.
func (r *Result) FileName() string {
	return r.Window.Today() + ".md"
}
