package report

import (
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var reportDate = time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)

// tableRows parses doc as Markdown and returns the number of issue tracker
// body rows, or -1 if the document has no table.
func tableRows(t *testing.T, doc []byte) int {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(doc))

	rows := -1
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *east.Table:
			rows = 0
		case *east.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk markdown: %v", err)
	}
	return rows
}

func TestRender_SingleRow(t *testing.T) {
	doc := Render(Document{
		Author: "Alice",
		Date:   reportDate,
		Records: []Record{{
			Title:         "Fix bug",
			URL:           "http://x/1",
			ProjectStatus: strPtr("Open"),
			Deadline:      strPtr("2024-02-01"),
		}},
	})
	out := string(doc)

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") && line != trackerHeader && line != trackerAlign {
			rows = append(rows, line)
		}
	}
	if len(rows) != 1 {
		t.Fatalf("found %d data rows, want 1:\n%s", len(rows), out)
	}
	if want := "|1|[Fix bug](http://x/1)|Open|2024-02-01|-|"; rows[0] != want {
		t.Errorf("row = %q, want %q", rows[0], want)
	}
	if !strings.Contains(out, "**Reported By: Alice**") {
		t.Errorf("missing author line:\n%s", out)
	}
	if got := tableRows(t, doc); got != 1 {
		t.Errorf("markdown table has %d body rows, want 1", got)
	}
}

func TestRender_Empty(t *testing.T) {
	doc := Render(Document{Author: "Bob", Date: reportDate})

	want := "## Weekly Report: February 05, 2024\n" +
		"\n" +
		"**Reported By: Bob**\n" +
		"\n" +
		"### Status and accomplishments\n" +
		"-\n" +
		"\n" +
		"### Issue Tracker\n" +
		"|No.|Issue Title|Status|Deadline|Comment|\n" +
		"|:---:|---|:---:|---|:---:|\n" +
		"\n" +
		"### Issues and dependencies\n" +
		"-\n" +
		"\n" +
		"### Plan for next week\n" +
		"-\n"
	if string(doc) != want {
		t.Errorf("Render() =\n%s\nwant\n%s", doc, want)
	}
	if got := tableRows(t, doc); got != 0 {
		t.Errorf("markdown table has %d body rows, want 0", got)
	}
}

func TestRender_NullPlaceholderAndNumbering(t *testing.T) {
	doc := Render(Document{
		Author: "Carol",
		Date:   reportDate,
		Records: []Record{
			{Title: "one", URL: "u1"},
			{Title: "two", URL: "u2", ProjectStatus: strPtr("Done")},
			{Title: "three", URL: "u3", Deadline: strPtr("2024-03-01")},
		},
	})
	out := string(doc)

	for _, want := range []string{
		"|1|[one](u1)|None|None|-|\n",
		"|2|[two](u2)|Done|None|-|\n",
		"|3|[three](u3)|None|2024-03-01|-|\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing row %q in:\n%s", want, out)
		}
	}
	if got := tableRows(t, doc); got != 3 {
		t.Errorf("markdown table has %d body rows, want 3", got)
	}
}

func TestRender_SectionOrder(t *testing.T) {
	out := string(Render(Document{Author: "Dan", Date: reportDate}))

	last := -1
	for _, s := range []string{SectionStatus, SectionTracker, SectionDependencies, SectionPlan} {
		idx := strings.Index(out, "### "+s+"\n")
		if idx < 0 {
			t.Fatalf("missing section %q", s)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
}

func TestRow_EscapesPipes(t *testing.T) {
	got := Row(4, Record{Title: "a | b\nc", URL: "u"})
	if want := `|4|[a \| b c](u)|None|None|-|`; got != want {
		t.Errorf("Row() = %q, want %q", got, want)
	}
}
