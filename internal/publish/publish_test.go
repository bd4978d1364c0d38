package publish

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const sampleReport = "## Weekly Report: January 10, 2024\n\n" +
	"**Reported By: Alice**\n\n" +
	"### Issue Tracker\n" +
	"|No.|Issue Title|Status|Deadline|Comment|\n" +
	"|:---:|---|:---:|---|:---:|\n" +
	"|1|[Fix bug](http://x/1)|Open|2024-02-01|-|\n"

func TestMapPath(t *testing.T) {
	tests := []struct {
		name      string
		sourceDir string
		outputDir string
		inputPath string
		want      string
	}{
		{"report becomes directory", "output", "site", "output/2024-01-10.md", "site/2024-01-10/index.html"},
		{"nested report", "output", "site", "output/team/2024-01-10.md", "site/team/2024-01-10/index.html"},
		{"index stays index", "output", "site", "output/index.md", "site/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filepath.ToSlash(MapPath(tt.sourceDir, tt.outputDir, tt.inputPath))
			if got != tt.want {
				t.Errorf("MapPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		want    string
	}{
		{"report heading", sampleReport, "output/2024-01-10.md", "Weekly Report: January 10, 2024"},
		{"h1 heading", "# Title\n\ntext", "x.md", "Title"},
		{"h3 ignored", "### Small\n", "output/2024-01-03.md", "2024-01-03"},
		{"no heading", "just text", "output/notes.md", "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle([]byte(tt.content), tt.path); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "output/2024-01-03.md", []byte("## Weekly Report: January 03, 2024\n"), 0o644)
	_ = afero.WriteFile(fs, "output/2024-01-10.md", []byte(sampleReport), 0o644)
	_ = afero.WriteFile(fs, "output/notes.txt", []byte("ignored"), 0o644)

	g, err := NewGenerator(fs, "output", "site", "")
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	pages, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("Generate() returned %d pages, want 2", len(pages))
	}
	if pages[0].Title != "Weekly Report: January 10, 2024" {
		t.Errorf("newest page = %q", pages[0].Title)
	}
	if pages[0].Href != "./2024-01-10/" {
		t.Errorf("Href = %q, want %q", pages[0].Href, "./2024-01-10/")
	}

	html, err := afero.ReadFile(fs, filepath.Join("site", "2024-01-10", "index.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	for _, want := range []string{
		"<title>Weekly Report: January 10, 2024</title>",
		"<table>",
		`<a href="http://x/1">Fix bug</a>`,
		"<td>2024-02-01</td>",
	} {
		if !strings.Contains(string(html), want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}

	index, err := afero.ReadFile(fs, filepath.Join("site", "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	newer := strings.Index(string(index), "2024-01-10")
	older := strings.Index(string(index), "2024-01-03")
	if newer < 0 || older < 0 || newer > older {
		t.Errorf("index not ordered newest first:\n%s", index)
	}
}

func TestNewGenerator_CustomTemplate(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "page.tmpl", []byte("<main>{{.Title}}|{{.Content}}</main>"), 0o644)

	g, err := NewGenerator(fs, "output", "site", "page.tmpl")
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	out, err := g.RenderPage("T", []byte("hello"))
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if got := string(out); got != "<main>T|<p>hello</p>\n</main>" {
		t.Errorf("RenderPage() = %q", got)
	}
}

func TestNewGenerator_MissingTemplate(t *testing.T) {
	if _, err := NewGenerator(afero.NewMemMapFs(), "output", "site", "missing.tmpl"); err == nil {
		t.Error("NewGenerator() error = nil for missing template")
	}
}
