package report

import (
	"fmt"
	"strings"
	"time"
)

// NonePlaceholder is written in table cells whose value is absent.
const NonePlaceholder = "None"

// HeadingDateFormat is the layout of the date in the report heading.
const HeadingDateFormat = "January 02, 2006"

// Section headings of the report, in document order.
const (
	SectionStatus       = "Status and accomplishments"
	SectionTracker      = "Issue Tracker"
	SectionDependencies = "Issues and dependencies"
	SectionPlan         = "Plan for next week"
)

const (
	trackerHeader = "|No.|Issue Title|Status|Deadline|Comment|"
	trackerAlign  = "|:---:|---|:---:|---|:---:|"
)

// Document holds what goes into one weekly report.
type Document struct {
	Author  string
	Date    time.Time // report date, already in the reporting time zone
	Records []Record  // ranked records, one table row each
}

// Render produces the Markdown report for doc.
func Render(doc Document) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "## Weekly Report: %s\n\n", doc.Date.Format(HeadingDateFormat))
	fmt.Fprintf(&b, "**Reported By: %s**\n", doc.Author)

	writePlaceholderSection(&b, SectionStatus)

	fmt.Fprintf(&b, "\n### %s\n", SectionTracker)
	b.WriteString(trackerHeader + "\n")
	b.WriteString(trackerAlign + "\n")
	for i, r := range doc.Records {
		b.WriteString(Row(i+1, r) + "\n")
	}

	writePlaceholderSection(&b, SectionDependencies)
	writePlaceholderSection(&b, SectionPlan)

	return []byte(b.String())
}

// Row formats the issue tracker table row for r at 1-based position n.
func Row(n int, r Record) string {
	return fmt.Sprintf("|%d|[%s](%s)|%s|%s|-|",
		n, escapeCell(r.Title), r.URL, orNone(r.ProjectStatus), orNone(r.Deadline))
}

func writePlaceholderSection(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n### %s\n-\n", title)
}

func orNone(s *string) string {
	if s == nil {
		return NonePlaceholder
	}
	return escapeCell(*s)
}

// escapeCell keeps a value inside its table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.NewReplacer("\r\n", " ", "\n", " ").Replace(s)
}
