// Package renderer holds the templ components of the gallery site: the
// shared layout with its SEO head, the home and category pages, the static
// content pages, and the sitemap and JSON-LD documents.
package renderer

import (
	"fmt"
	"strings"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/config"
)

// Site is the public metadata shared by every page.
type Site struct {
	Name        string
	URL         string
	Description string
	OGImage     string
	GitHub      string
	Twitter     string
}

// SiteFromConfig converts the configured site settings.
func SiteFromConfig(cfg config.SiteConfig) Site {
	return Site{
		Name:        cfg.Name,
		URL:         strings.TrimRight(cfg.URL, "/"),
		Description: cfg.Description,
		OGImage:     cfg.OGImage,
		GitHub:      cfg.GitHub,
		Twitter:     cfg.Twitter,
	}
}

// Absolute joins path onto the site URL.
func (s Site) Absolute(path string) string {
	if path == "" || path == "/" {
		return s.URL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.URL + path
}

// Meta is the document head of one page.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	// Path is the canonical path relative to the site URL.
	Path string

	OGTitle            string
	OGDescription      string
	TwitterTitle       string
	TwitterDescription string
	ImageAlt           string

	NoIndex bool
	JSONLD  []interface{}
}

func (m Meta) ogTitle() string {
	return firstNonEmpty(m.OGTitle, m.Title)
}

func (m Meta) ogDescription() string {
	return firstNonEmpty(m.OGDescription, m.Description)
}

func (m Meta) twitterTitle() string {
	return firstNonEmpty(m.TwitterTitle, m.ogTitle())
}

func (m Meta) twitterDescription() string {
	return firstNonEmpty(m.TwitterDescription, m.ogDescription())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// HomeMeta describes the landing page.
func HomeMeta(site Site, categories []catalog.CategoryRecord) Meta {
	return Meta{
		Title:       fmt.Sprintf("%s - Free shadcn/ui Blocks and Components", site.Name),
		Description: site.Description,
		Keywords: []string{
			strings.ToLower(site.Name), "shadcn components", "shadcn ui components",
			"shadcn/ui components", "React UI components", "Tailwind CSS components",
			"Next.js components", "free UI components", "radix ui",
		},
		Path:   "/",
		JSONLD: []interface{}{WebsiteJSONLD(site, categories)},
	}
}

// BlocksMeta describes the index of all categories.
func BlocksMeta(site Site, categories []catalog.CategoryRecord) Meta {
	total := catalog.Total(categories)
	return Meta{
		Title: fmt.Sprintf("Shadcn Blocks - %d Free shadcn/ui Blocks", total),
		Description: fmt.Sprintf("Browse %d free shadcn/ui blocks across %d categories. Copy and paste into your React and Tailwind CSS projects.",
			total, len(categories)),
		Path: "/blocks",
	}
}

// CategoryPath is where a category page is served.
func CategoryPath(id string) string {
	return "/blocks/" + id
}

// PreviewPath is where the preview frame of a block is served.
func PreviewPath(id string) string {
	return "/blocks/preview/" + id
}

// CategoryMeta builds the SEO head of a category page from its display name
// and block count.
func CategoryMeta(site Site, category catalog.CategoryRecord) Meta {
	name := category.Name
	lower := strings.ToLower(name)
	count := category.Count

	keywords := []string{
		"shadcn %s", "shadcn %s blocks", "shadcn/ui %s", "shadcn/ui %s components",
		"shadcn ui %s", "%s UI blocks", "%s component react", "%s UI tailwind",
		"React %s components", "Tailwind %s", "Next.js %s", "free %s blocks",
		"free %s component", "copy paste %s", "%s examples", "%s template", "radix %s",
	}
	for i, k := range keywords {
		keywords[i] = fmt.Sprintf(k, lower)
	}

	return Meta{
		Title: fmt.Sprintf("%s Shadcn Blocks - %d Free shadcn/ui %s Components", name, count, name),
		Description: fmt.Sprintf("Free shadcn/ui %s blocks and components built with React, Tailwind CSS, and Next.js. "+
			"Copy and paste %d beautifully designed, accessible %s UI blocks into your projects.", lower, count, lower),
		Keywords: keywords,
		Path:     CategoryPath(category.ID),
		OGTitle:  fmt.Sprintf("%s Shadcn Blocks - %d Free shadcn/ui Components", name, count),
		OGDescription: fmt.Sprintf("Free shadcn/ui %s blocks and components built with React, Tailwind CSS, and Next.js. "+
			"Copy and paste %d beautifully designed, accessible %s UI blocks.", lower, count, lower),
		TwitterTitle: fmt.Sprintf("%s Shadcn Blocks - %d Free Components", name, count),
		TwitterDescription: fmt.Sprintf("Free shadcn/ui %s blocks built with React, Tailwind CSS, and Next.js. "+
			"Copy and paste %d accessible UI blocks.", lower, count),
		ImageAlt: fmt.Sprintf("%s shadcn/ui blocks - %s", name, site.Name),
		JSONLD: []interface{}{BreadcrumbJSONLD(site, []Breadcrumb{
			{Name: "Shadcn Blocks", Path: "/blocks"},
			{Name: name, Path: CategoryPath(category.ID)},
		})},
	}
}
