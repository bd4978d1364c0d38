package report

// openStatuses are the board statuses reported regardless of completion date.
var openStatuses = map[string]bool{
	StatusInProgress:       true,
	StatusOpen:             true,
	StatusReopened:         true,
	StatusReviewInProgress: true,
	StatusNeedReview:       true,
}

// Keep reports whether a record belongs in the report for window: it was
// completed on a window date, or its status is still in the open workflow.
func Keep(r Record, w Window) bool {
	if r.CompleteDate != nil && w.Contains(*r.CompleteDate) {
		return true
	}
	return r.ProjectStatus != nil && openStatuses[*r.ProjectStatus]
}

// Select returns the records kept for window, in input order.
func Select(records []Record, w Window) []Record {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if Keep(r, w) {
			kept = append(kept, r)
		}
	}
	return kept
}
