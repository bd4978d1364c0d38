package report

import (
	"cmp"
	"slices"
)

// statusRanks orders board statuses for display.
var statusRanks = map[string]int{
	StatusOpen:             1,
	StatusReopened:         2,
	StatusInProgress:       3,
	StatusNeedReview:       4,
	StatusReviewInProgress: 5,
	StatusDone:             6,
}

// unknownStatusRank is used for missing or unlisted statuses. It ties with
// "Review In Progress".
const unknownStatusRank = 5

// StatusRank returns the display rank of a status.
func StatusRank(status *string) int {
	if status == nil {
		return unknownStatusRank
	}
	if rank, ok := statusRanks[*status]; ok {
		return rank
	}
	return unknownStatusRank
}

// Rank returns a copy of records sorted by status rank, then completion
// date, then deadline. Missing dates sort after present ones. The sort is
// stable, so fully tied records keep their input order.
func Rank(records []Record) []Record {
	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, compareRecords)
	return ranked
}

func compareRecords(a, b Record) int {
	if c := cmp.Compare(StatusRank(a.ProjectStatus), StatusRank(b.ProjectStatus)); c != 0 {
		return c
	}
	if c := compareDates(a.CompleteDate, b.CompleteDate); c != 0 {
		return c
	}
	return compareDates(a.Deadline, b.Deadline)
}

// compareDates orders YYYY-MM-DD strings lexically, with nil last.
func compareDates(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
