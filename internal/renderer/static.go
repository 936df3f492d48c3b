package renderer

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Section is a headed block of prose with an optional bullet list.
type Section struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

// StaticPage is a content page that does not depend on the catalog.
type StaticPage struct {
	Slug        string
	Title       string
	Description string
	Intro       string
	Sections    []Section
}

// Meta returns the document head of the page.
func (p StaticPage) Meta(site Site) Meta {
	return Meta{
		Title:       p.Title + " - " + site.Name,
		Description: p.Description,
		Path:        "/" + p.Slug,
	}
}

// Component renders the page body.
func (p StaticPage) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<article class="mx-auto max-w-3xl space-y-10">`)
		h.raw(`<header class="space-y-3">`)
		h.element("h1", "text-4xl font-bold tracking-tight", p.Title)
		if p.Intro != "" {
			h.element("p", "text-lg text-muted-foreground", p.Intro)
		}
		h.raw("</header>")

		for _, s := range p.Sections {
			h.raw(`<section class="space-y-3">`)
			h.element("h2", "text-2xl font-semibold", s.Heading)
			for _, para := range s.Paragraphs {
				h.element("p", "leading-relaxed text-muted-foreground", para)
			}
			if len(s.Items) > 0 {
				h.raw(`<ul class="list-disc space-y-1 pl-6 text-muted-foreground">`)
				for _, item := range s.Items {
					h.element("li", "", item)
				}
				h.raw("</ul>")
			}
			h.raw("</section>")
		}

		h.raw("</article>")
		return h.err
	})
}

// StaticPages returns the about, terms, privacy, license and contact pages
// keyed by slug.
func StaticPages(site Site) map[string]StaticPage {
	pages := []StaticPage{
		{
			Slug:        "about",
			Title:       "About",
			Description: "Learn more about " + site.Name + " and Rayyan Quantum AI Labs.",
			Intro:       site.Name + " is a modern UI component library built for React developers who want to ship beautiful applications faster.",
			Sections: []Section{
				{
					Heading: "Our Mission",
					Paragraphs: []string{
						"Building beautiful user interfaces should not be time-consuming or complicated. " +
							site.Name + " provides production-ready components that you can copy, paste, and customize to fit your needs.",
					},
				},
				{
					Heading: "Built by Rayyan Quantum AI Labs",
					Paragraphs: []string{
						site.Name + " is developed and maintained by Rayyan Quantum AI Labs, a team creating tools and technologies for developers.",
					},
				},
			},
		},
		{
			Slug:        "terms",
			Title:       "Terms of Service",
			Description: "Terms of service for using " + site.Name + ".",
			Intro:       "Please read these terms carefully before using " + site.Name + ".",
			Sections: []Section{
				{
					Heading: "1. Acceptance of Terms",
					Paragraphs: []string{
						"By accessing and using " + site.Name + " you accept and agree to be bound by these terms. If you do not agree, please do not use the service.",
					},
				},
				{
					Heading:    "2. Use License",
					Paragraphs: []string{"Components are provided under the Rayyan Quantum AI Labs UI License (Custom MIT Variant)."},
					Items: []string{
						"Use in personal and commercial projects",
						"Modify components to suit your needs",
						"Do not resell, redistribute, or sublicense the library",
						"Do not use the components in website builders or UI generators",
					},
				},
				{
					Heading: "3. User Responsibilities",
					Items: []string{
						"Comply with all applicable laws and regulations",
						"Do not transmit malicious code",
						"Do not attempt to gain unauthorized access to our systems",
					},
				},
				{
					Heading: "4. Disclaimer",
					Paragraphs: []string{
						"The components are provided \"as is\" without warranties of any kind.",
					},
				},
			},
		},
		{
			Slug:        "privacy",
			Title:       "Privacy Policy",
			Description: "How " + site.Name + " collects, uses, and protects your information.",
			Intro:       "Your privacy is important to us. This policy explains how we collect, use, and protect your information.",
			Sections: []Section{
				{
					Heading: "Information We Collect",
					Items: []string{
						"Pages visited and time spent on pages",
						"Components viewed and downloaded",
						"Browser type and version",
						"IP address (anonymized)",
					},
				},
				{
					Heading: "Data Sharing",
					Paragraphs: []string{
						"We do not sell, trade, or rent your personal information to third parties.",
					},
				},
				{
					Heading: "Your Rights",
					Items: []string{
						"Access the personal information we hold about you",
						"Request correction of inaccurate information",
						"Request deletion of your personal information",
					},
				},
			},
		},
		{
			Slug:        "license",
			Title:       "License",
			Description: site.Name + " is licensed under a custom MIT variant.",
			Intro:       site.Name + " is licensed under a custom MIT variant that gives you maximum flexibility.",
			Sections: []Section{
				{
					Heading: "What You Can Do",
					Items: []string{
						"Commercial projects",
						"Unlimited client work",
						"Removing credits and adding your own branding",
						"Modifying components as needed",
					},
				},
				{
					Heading: "What You Cannot Do",
					Items: []string{
						"Reselling, redistributing, or licensing the library",
						"Using the components in website builders or automated UI generators",
					},
				},
			},
		},
		{
			Slug:        "contact",
			Title:       "Contact",
			Description: "Get in touch with the " + site.Name + " team.",
			Intro:       "Have a question or want to work together? We would love to hear from you.",
			Sections: []Section{
				{
					Heading:    "Reach Us",
					Paragraphs: []string{"Open an issue or start a discussion on GitHub."},
					Items:      nonEmpty(site.GitHub),
				},
			},
		},
	}

	bySlug := make(map[string]StaticPage, len(pages))
	for _, p := range pages {
		bySlug[p.Slug] = p
	}
	return bySlug
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
