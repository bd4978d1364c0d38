package github

// Wire types for the issues query. Pointer fields distinguish an absent or
// null value from a zero value so callers can reject malformed responses.

// IssuesData is the "data" member of the issues query response.
type IssuesData struct {
	Repository *Repository `json:"repository"`
}

// Repository holds the issues connection.
type Repository struct {
	Issues IssueConnection `json:"issues"`
}

// IssueConnection is a page of issues.
type IssueConnection struct {
	Edges []IssueEdge `json:"edges"`
}

// IssueEdge wraps one issue node.
type IssueEdge struct {
	Node *IssueNode `json:"node"`
}

// IssueNode is one issue as returned by the backend.
type IssueNode struct {
	Title        *string                `json:"title"`
	URL          *string                `json:"url"`
	Closed       *bool                  `json:"closed"`
	CreatedAt    *string                `json:"createdAt"`
	ClosedAt     *string                `json:"closedAt"`
	ProjectItems *ProjectItemConnection `json:"projectItems"`
}

// ProjectItemConnection lists the project board items an issue is linked to.
type ProjectItemConnection struct {
	TotalCount int               `json:"totalCount"`
	Edges      []ProjectItemEdge `json:"edges"`
}

// ProjectItemEdge wraps one project item.
type ProjectItemEdge struct {
	Node *ProjectItem `json:"node"`
}

// ProjectItem is an issue's entry on a project board.
type ProjectItem struct {
	ID          string               `json:"id"`
	UpdatedAt   string               `json:"updatedAt"`
	Project     *Project             `json:"project"`
	FieldValues FieldValueConnection `json:"fieldValues"`
}

// Project is the board a project item belongs to.
type Project struct {
	Title *string `json:"title"`
}

// FieldValueConnection lists an item's field values. Entries may be null.
type FieldValueConnection struct {
	Nodes []*FieldValue `json:"nodes"`
}

// FieldValue is a single-select or date value of a board field.
// Values of other field types decode with every member nil.
type FieldValue struct {
	Field *FieldRef `json:"field"`
	Name  *string   `json:"name"` // single-select option label
	Date  *string   `json:"date"` // YYYY-MM-DD
}

// FieldRef names the field a value belongs to.
type FieldRef struct {
	Name string `json:"name"`
}

// FieldName returns the declared name of the value's field, or "" if unknown.
func (v *FieldValue) FieldName() string {
	if v == nil || v.Field == nil {
		return ""
	}
	return v.Field.Name
}
