package renderer

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"github.com/a-h/templ"
	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

var (
	frontMatterDelim = []byte("---")
	mdxStatement     = regexp.MustCompile(`(?m)^(?:import|export)\s.*$\n?`)

	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
)

// Doc is a block's documentation page parsed from its MDX stub. JSX in the
// body is not evaluated; the renderer leaves raw markup out.
type Doc struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	HTML        string `yaml:"-"`
}

// DocPath is where the documentation page of a block is served.
func DocPath(id string) string {
	return "/blocks/docs/" + id
}

// ParseDoc splits optional YAML front matter from data, drops MDX import and
// export statements, and renders the remaining markdown.
func ParseDoc(data []byte) (Doc, error) {
	var doc Doc

	body := data
	if bytes.HasPrefix(data, frontMatterDelim) {
		rest := data[len(frontMatterDelim):]
		if end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...)); end >= 0 {
			if err := yaml.Unmarshal(rest[:end], &doc); err != nil {
				return Doc{}, err
			}
			body = rest[end+1+len(frontMatterDelim):]
		}
	}

	var buf bytes.Buffer
	if err := markdown.Convert(mdxStatement.ReplaceAll(body, nil), &buf); err != nil {
		return Doc{}, err
	}
	doc.HTML = buf.String()
	return doc, nil
}

// DocMeta builds the head of a block's documentation page.
func DocMeta(site Site, rec catalog.ComponentRecord, doc Doc) Meta {
	title := firstNonEmpty(doc.Title, rec.Name)
	return Meta{
		Title:       title + " - " + site.Name,
		Description: firstNonEmpty(doc.Description, site.Description),
		Path:        DocPath(rec.ID),
		JSONLD: []interface{}{BreadcrumbJSONLD(site, []Breadcrumb{
			{Name: "Home", Path: "/"},
			{Name: "Blocks", Path: "/blocks"},
			{Name: title, Path: DocPath(rec.ID)},
		})},
	}
}

// DocPage renders a block's documentation with its live preview.
func DocPage(category catalog.CategoryRecord, rec catalog.ComponentRecord, doc Doc) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<article class="space-y-8" data-doc`)
		h.attr("data-block", rec.ID)
		h.raw(">")
		h.link(CategoryPath(category.ID), "text-sm font-medium text-muted-foreground hover:text-primary",
			"Back to "+category.Name)
		h.element("h1", "text-4xl font-bold tracking-tight", firstNonEmpty(doc.Title, rec.Name))
		if doc.Description != "" {
			h.element("p", "text-lg text-muted-foreground", doc.Description)
		}

		if rec.Kind == catalog.KindFile {
			h.raw(`<div class="aspect-video overflow-hidden rounded-2xl border"><iframe`)
			h.attr("src", PreviewPath(rec.ID))
			h.attr("title", rec.Name+" preview")
			h.raw(` class="h-full w-full"></iframe></div>`)
		}

		h.raw(`<div class="prose max-w-none">`)
		h.raw(doc.HTML)
		h.raw("</div></article>")
		return h.err
	})
}
