package report

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/tessro/weekly/internal/github"
)

const pipelineFixture = `{"repository": {"issues": {"edges": [
  {"node": {"title": "Newest done recently", "url": "u5", "closed": true, "createdAt": "2024-01-09T00:00:00Z", "closedAt": "2024-01-09T00:00:00Z",
    "projectItems": {"edges": [{"node": {"project": {"title": "P"}, "fieldValues": {"nodes": [
      {"field": {"name": "Status"}, "name": "Done"},
      {"field": {"name": "Completed"}, "date": "2024-01-09"}]}}}]}}},
  {"node": {"title": "Open item", "url": "u4", "closed": false, "createdAt": "2024-01-08T00:00:00Z", "closedAt": null,
    "projectItems": {"edges": [{"node": {"project": {"title": "P"}, "fieldValues": {"nodes": [
      {"field": {"name": "Status"}, "name": "Open"},
      {"field": {"name": "Deadline"}, "date": "2024-01-20"}]}}}]}}},
  {"node": {"title": "Old done", "url": "u3", "closed": true, "createdAt": "2023-11-01T00:00:00Z", "closedAt": "2023-11-02T00:00:00Z",
    "projectItems": {"edges": [{"node": {"project": {"title": "P"}, "fieldValues": {"nodes": [
      {"field": {"name": "Status"}, "name": "Done"},
      {"field": {"name": "Completed"}, "date": "2023-11-02"}]}}}]}}},
  {"node": {"title": "In progress", "url": "u2", "closed": false, "createdAt": "2023-10-01T00:00:00Z", "closedAt": null,
    "projectItems": {"edges": [{"node": {"project": {"title": "P"}, "fieldValues": {"nodes": [
      {"field": {"name": "Status"}, "name": "In Progress"}]}}}]}}},
  {"node": {"title": "No board", "url": "u1", "closed": false, "createdAt": "2023-09-01T00:00:00Z", "closedAt": null,
    "projectItems": {"edges": []}}}
]}}}`

func TestBuild(t *testing.T) {
	var data github.IssuesData
	if err := json.Unmarshal([]byte(pipelineFixture), &data); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	dhaka := time.FixedZone("Asia/Dhaka", 6*60*60)

	res, err := Build(&data, Params{
		Author:   "Alice",
		Now:      time.Date(2024, 1, 9, 20, 0, 0, 0, time.UTC), // 02:00 on Jan 10 in Dhaka
		Location: dhaka,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(res.Extracted) != 5 {
		t.Errorf("extracted %d records, want 5", len(res.Extracted))
	}
	if want := []string{"Open item", "In progress", "Newest done recently"}; !slices.Equal(titles(res.Kept), want) {
		t.Errorf("kept = %v, want %v", titles(res.Kept), want)
	}
	if res.FileName() != "2024-01-10.md" {
		t.Errorf("FileName() = %q, want %q", res.FileName(), "2024-01-10.md")
	}

	out := string(res.Markdown)
	if !strings.HasPrefix(out, "## Weekly Report: January 10, 2024\n") {
		t.Errorf("unexpected heading:\n%s", out)
	}
	if !strings.Contains(out, "|1|[Open item](u4)|Open|2024-01-20|-|\n|2|[In progress](u2)|In Progress|None|-|\n|3|[Newest done recently](u5)|Done|None|-|\n") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestBuild_NoRepository(t *testing.T) {
	res, err := Build(&github.IssuesData{}, Params{Author: "A", Now: reportDate})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(res.Kept) != 0 || tableRows(t, res.Markdown) != 0 {
		t.Errorf("expected empty report, got:\n%s", res.Markdown)
	}
}
