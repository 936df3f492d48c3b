package renderer

import (
	"encoding/xml"
	"time"

	"github.com/rayyanquantum/rayui/internal/catalog"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders the sitemap: the home page at priority 1.0 followed by
// one weekly entry per category at priority 0.8.
func Sitemap(site Site, categories []catalog.CategoryRecord, modified time.Time) ([]byte, error) {
	lastMod := modified.UTC().Format(time.RFC3339)

	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs, sitemapURL{
		Loc:        site.URL,
		LastMod:    lastMod,
		ChangeFreq: "weekly",
		Priority:   "1.0",
	})
	for _, c := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        site.Absolute(CategoryPath(c.ID)),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
