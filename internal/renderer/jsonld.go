package renderer

import (
	"fmt"
	"strings"

	"github.com/rayyanquantum/rayui/internal/catalog"
)

// Breadcrumb is one step of a BreadcrumbList.
type Breadcrumb struct {
	Name string
	Path string
}

// BreadcrumbJSONLD builds a schema.org BreadcrumbList rooted at the site.
func BreadcrumbJSONLD(site Site, items []Breadcrumb) map[string]interface{} {
	elements := make([]map[string]interface{}, 0, len(items)+1)
	elements = append(elements, map[string]interface{}{
		"@type":    "ListItem",
		"position": 1,
		"name":     "Home",
		"item":     site.URL,
	})
	for i, item := range items {
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 2,
			"name":     item.Name,
			"item":     site.Absolute(item.Path),
		})
	}

	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// WebsiteJSONLD describes the site, its publisher and the list of
// categories.
func WebsiteJSONLD(site Site, categories []catalog.CategoryRecord) map[string]interface{} {
	list := make([]map[string]interface{}, 0, len(categories))
	for i, c := range categories {
		list = append(list, map[string]interface{}{
			"@type":       "ListItem",
			"position":    i + 1,
			"name":        fmt.Sprintf("%s Shadcn UI Components", c.Name),
			"description": fmt.Sprintf("Free shadcn/ui %s components", strings.ToLower(c.Name)),
			"url":         site.Absolute(CategoryPath(c.ID)),
		})
	}

	sameAs := []string{}
	if site.GitHub != "" {
		sameAs = append(sameAs, site.GitHub)
	}

	return map[string]interface{}{
		"@context": "https://schema.org",
		"@graph": []map[string]interface{}{
			{
				"@type":       "WebSite",
				"name":        site.Name,
				"url":         site.URL,
				"description": site.Description,
			},
			{
				"@type":  "Organization",
				"name":   site.Name,
				"url":    site.URL,
				"logo":   site.OGImage,
				"sameAs": sameAs,
			},
			{
				"@type":           "ItemList",
				"name":            "Free Shadcn UI Components",
				"numberOfItems":   len(categories),
				"itemListElement": list,
			},
		},
	}
}
