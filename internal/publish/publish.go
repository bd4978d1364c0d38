// Package publish converts Markdown reports into HTML pages.
package publish

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/tessro/weekly/internal/output"
)

//go:embed templates/*.html
var templates embed.FS

// IndexTitle is the heading of the generated index page.
const IndexTitle = "Weekly Reports"

// PageData holds data passed to the page template.
type PageData struct {
	Title   string
	Content template.HTML
}

// Page describes one generated HTML page.
type Page struct {
	Title  string
	Source string // Markdown file
	Path   string // HTML file
	Href   string // link relative to the output directory
}

// Generator converts Markdown files into HTML pages.
type Generator struct {
	SourceDir string
	OutputDir string

	fs    afero.Fs
	md    goldmark.Markdown
	page  *template.Template
	index *template.Template
}

// NewGenerator creates a generator reading from sourceDir and writing to
// outputDir on fs. templateFile overrides the built-in page template when set.
func NewGenerator(fs afero.Fs, sourceDir, outputDir, templateFile string) (*Generator, error) {
	g := &Generator{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		fs:        fs,
		md:        newMarkdown(),
	}

	var err error
	if templateFile != "" {
		content, err := afero.ReadFile(fs, templateFile)
		if err != nil {
			return nil, fmt.Errorf("reading template: %w", err)
		}
		g.page, err = template.New("page").Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("parsing template: %w", err)
		}
	} else {
		g.page, err = template.ParseFS(templates, "templates/page.html")
		if err != nil {
			return nil, fmt.Errorf("parsing template: %w", err)
		}
	}

	g.index, err = template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}

	return g, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

// Generate converts every .md file under SourceDir and writes an index page.
// Pages are returned newest first.
func (g *Generator) Generate() ([]Page, error) {
	var pages []Page
	err := afero.Walk(g.fs, g.SourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != g.SourceDir && g.OutputDir != "" && filepath.Clean(path) == filepath.Clean(g.OutputDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".md") {
			return nil
		}

		page, err := g.processFile(path)
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Report names are dates, so reverse lexical order is newest first.
	slices.SortFunc(pages, func(a, b Page) int {
		return strings.Compare(b.Source, a.Source)
	})

	if err := g.writeIndex(pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// processFile converts a single Markdown file to HTML.
func (g *Generator) processFile(inputPath string) (Page, error) {
	content, err := afero.ReadFile(g.fs, inputPath)
	if err != nil {
		return Page{}, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	title := ExtractTitle(content, inputPath)
	out, err := g.RenderPage(title, content)
	if err != nil {
		return Page{}, fmt.Errorf("converting %s: %w", inputPath, err)
	}

	outputPath := MapPath(g.SourceDir, g.OutputDir, inputPath)
	w := output.NewWriter(g.fs, filepath.Dir(outputPath))
	if _, err := w.Write(filepath.Base(outputPath), out); err != nil {
		return Page{}, err
	}

	href := "./"
	if rel, err := filepath.Rel(g.OutputDir, filepath.Dir(outputPath)); err == nil && rel != "." {
		href += filepath.ToSlash(rel) + "/"
	}

	return Page{
		Title:  title,
		Source: inputPath,
		Path:   outputPath,
		Href:   href,
	}, nil
}

// RenderPage converts Markdown content into a complete HTML page.
func (g *Generator) RenderPage(title string, content []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := g.md.Convert(content, &body); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := g.page.Execute(&out, PageData{
		Title:   title,
		Content: template.HTML(body.String()),
	}); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return out.Bytes(), nil
}

func (g *Generator) writeIndex(pages []Page) error {
	var buf bytes.Buffer
	if err := g.index.Execute(&buf, struct {
		Title string
		Pages []Page
	}{IndexTitle, pages}); err != nil {
		return fmt.Errorf("executing index template: %w", err)
	}

	if _, err := output.NewWriter(g.fs, g.OutputDir).Write("index.html", buf.Bytes()); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

var headingRegex = regexp.MustCompile(`(?m)^#{1,2}\s+(.+)$`)

// ExtractTitle returns the first level 1 or 2 heading of content, falling
// back to the file name without extension.
func ExtractTitle(content []byte, filePath string) string {
	matches := headingRegex.FindSubmatch(content)
	if len(matches) > 1 {
		return strings.TrimSpace(string(matches[1]))
	}

	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// MapPath converts a source Markdown path to an output HTML path using
// pretty URLs: reports/2024-01-10.md becomes site/2024-01-10/index.html.
func MapPath(sourceDir, outputDir, inputPath string) string {
	relPath, err := filepath.Rel(sourceDir, inputPath)
	if err != nil {
		relPath = filepath.Base(inputPath)
	}
	relPath = strings.TrimSuffix(relPath, ".md")

	if filepath.Base(relPath) == "index" {
		return filepath.Join(outputDir, relPath+".html")
	}
	return filepath.Join(outputDir, relPath, "index.html")
}
