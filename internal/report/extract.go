package report

import (
	"errors"
	"fmt"

	"github.com/tessro/weekly/internal/github"
)

// ErrMalformed is returned when an issue edge lacks a mandatory field.
var ErrMalformed = errors.New("malformed issue response")

// MalformedError identifies the edge and field that made a response unusable.
type MalformedError struct {
	Index int    // position of the edge in the response
	Field string // missing field name
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: edge %d: missing %s", ErrMalformed, e.Index, e.Field)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// Extract converts issue edges into Records, one per edge, preserving order.
// A missing title, url, closed flag or createdAt fails the whole extraction.
func Extract(edges []github.IssueEdge) ([]Record, error) {
	records := make([]Record, 0, len(edges))
	for i, edge := range edges {
		rec, err := extractEdge(i, edge)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func extractEdge(i int, edge github.IssueEdge) (Record, error) {
	node := edge.Node
	if node == nil {
		return Record{}, &MalformedError{Index: i, Field: "node"}
	}
	switch {
	case node.Title == nil:
		return Record{}, &MalformedError{Index: i, Field: "title"}
	case node.URL == nil:
		return Record{}, &MalformedError{Index: i, Field: "url"}
	case node.Closed == nil:
		return Record{}, &MalformedError{Index: i, Field: "closed"}
	case node.CreatedAt == nil:
		return Record{}, &MalformedError{Index: i, Field: "createdAt"}
	}

	rec := Record{
		Title:     *node.Title,
		URL:       *node.URL,
		IsClosed:  *node.Closed,
		CreatedAt: *node.CreatedAt,
		ClosedAt:  clone(node.ClosedAt),
	}

	item := firstProjectItem(node.ProjectItems)
	if item == nil {
		return rec, nil
	}

	if item.Project != nil && item.Project.Title != nil {
		rec.ProjectTitle = clone(item.Project.Title)
	}

	// Later values for the same field overwrite earlier ones.
	for _, v := range item.FieldValues.Nodes {
		if v == nil {
			continue
		}
		switch ParseFieldKind(v.FieldName()) {
		case FieldDeadline:
			rec.Deadline = clone(v.Date)
		case FieldStarted:
			rec.StartDate = clone(v.Date)
		case FieldCompleted:
			rec.CompleteDate = clone(v.Date)
		case FieldStatus:
			rec.ProjectStatus = clone(v.Name)
		}
	}

	return rec, nil
}

// firstProjectItem returns the first linked project item, or nil.
func firstProjectItem(items *github.ProjectItemConnection) *github.ProjectItem {
	if items == nil || len(items.Edges) == 0 {
		return nil
	}
	return items.Edges[0].Node
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	return strPtr(*s)
}
