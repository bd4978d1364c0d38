// Package report turns an issue-tracker response into a weekly status report.
//
// The pipeline is Extract → Select → Rank → Render. Every stage takes a
// collection and returns a new one; Records are never modified after
// extraction.
package report

// Project board status labels.
const (
	StatusOpen             = "Open"
	StatusReopened         = "Reopened"
	StatusInProgress       = "In Progress"
	StatusNeedReview       = "Need Review"
	StatusReviewInProgress = "Review In Progress"
	StatusDone             = "Done"
)

// Record is one issue plus the metadata of its first linked project item.
// Nil pointers mean the value is absent.
type Record struct {
	Title     string  `yaml:"title"`
	URL       string  `yaml:"url"`
	IsClosed  bool    `yaml:"closed"`
	CreatedAt string  `yaml:"createdAt"`
	ClosedAt  *string `yaml:"closedAt"`

	// Project-derived fields. All nil when the issue has no project item.
	ProjectTitle  *string `yaml:"projectTitle"`
	ProjectStatus *string `yaml:"projectStatus"`
	StartDate     *string `yaml:"startDate"`
	CompleteDate  *string `yaml:"completeDate"`
	Deadline      *string `yaml:"deadline"`
}

// HasProject reports whether any project-derived field is set.
func (r Record) HasProject() bool {
	return r.ProjectTitle != nil || r.ProjectStatus != nil ||
		r.StartDate != nil || r.CompleteDate != nil || r.Deadline != nil
}

// FieldKind identifies a project board custom field the report understands.
type FieldKind int

const (
	FieldOther FieldKind = iota
	FieldDeadline
	FieldStarted
	FieldCompleted
	FieldStatus
)

// ParseFieldKind maps a board field's declared name to its kind.
// Names are matched exactly; anything unrecognized is FieldOther.
func ParseFieldKind(name string) FieldKind {
	switch name {
	case "Deadline":
		return FieldDeadline
	case "Started":
		return FieldStarted
	case "Completed":
		return FieldCompleted
	case "Status":
		return FieldStatus
	default:
		return FieldOther
	}
}

// String returns the board field name for the kind.
func (k FieldKind) String() string {
	switch k {
	case FieldDeadline:
		return "Deadline"
	case FieldStarted:
		return "Started"
	case FieldCompleted:
		return "Completed"
	case FieldStatus:
		return "Status"
	default:
		return "Other"
	}
}

// KnownFields lists the field kinds read from a project item, in display order.
var KnownFields = []FieldKind{FieldStatus, FieldStarted, FieldCompleted, FieldDeadline}

func strPtr(s string) *string { return &s }
