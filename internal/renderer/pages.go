package renderer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rayyanquantum/rayui/internal/catalog"
)

// HomePage renders the hero and the grid of categories.
func HomePage(site Site, categories []catalog.CategoryRecord) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<section class="space-y-4 pb-12 text-center">`)
		h.element("h1", "text-4xl font-bold tracking-tight sm:text-5xl", "Free shadcn/ui blocks for React")
		h.element("p", "mx-auto max-w-2xl text-lg text-muted-foreground", site.Description)
		h.element("p", "text-sm text-muted-foreground",
			fmt.Sprintf("%d components in %d categories", catalog.Total(categories), len(categories)))
		h.raw(`<div class="flex justify-center gap-3">`)
		h.link("/blocks", "rounded-lg bg-primary px-4 py-2 text-sm font-medium text-primary-foreground", "Browse blocks")
		h.raw("</div></section>")

		writeCategoryGrid(h, categories)
		return h.err
	})
}

// BlocksPage renders the index of all categories.
func BlocksPage(categories []catalog.CategoryRecord) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<div class="mb-10 space-y-3">`)
		h.element("h1", "text-4xl font-bold tracking-tight", "Shadcn Blocks")
		h.element("p", "text-muted-foreground",
			fmt.Sprintf("%d free blocks, ready to copy and paste.", catalog.Total(categories)))
		h.raw("</div>")

		writeCategoryGrid(h, categories)
		return h.err
	})
}

func writeCategoryGrid(h *htmlWriter, categories []catalog.CategoryRecord) {
	h.raw(`<ul class="grid gap-6 sm:grid-cols-2 lg:grid-cols-3" data-role="categories">`)
	for _, c := range categories {
		h.raw("<li")
		h.attr("data-category", c.ID)
		h.raw(` class="rounded-2xl border p-6">`)

		h.raw("<div")
		h.attr("class", "mb-4 h-24 rounded-lg bg-muted "+c.ThumbnailClasses)
		h.attr("data-icon", catalog.Icon(c.ID))
		h.raw("></div>")

		h.link(CategoryPath(c.ID), "text-lg font-semibold hover:underline", c.Name)
		h.element("p", "mt-1 text-sm text-muted-foreground", catalog.Description(c.ID))
		h.element("span", "mt-3 inline-block text-xs font-medium", componentCount(c.Count))
		h.raw("</li>")
	}
	h.raw("</ul>")
}

func componentCount(n int) string {
	if n == 1 {
		return "1 component"
	}
	return fmt.Sprintf("%d components", n)
}

// CategoryPage renders one category with a preview card per block.
func CategoryPage(category catalog.CategoryRecord, components []catalog.ComponentRecord) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<div class="mb-12 space-y-6">`)
		h.link("/blocks", "text-sm font-medium text-muted-foreground hover:text-primary", "Back to all components")
		h.raw(`<div class="flex items-center gap-3">`)
		h.element("h1", "text-4xl font-bold tracking-tight", category.Name)
		h.element("span", "rounded-full bg-primary/10 px-4 py-1.5 text-sm font-semibold text-primary",
			componentCount(len(components)))
		h.raw("</div>")
		h.element("p", "max-w-3xl text-lg text-muted-foreground", fmt.Sprintf(
			"Beautifully designed %s components built with React, TypeScript, and Tailwind CSS. "+
				"Production-ready and fully customizable. Copy, paste, and ship faster.",
			strings.ToLower(category.Name)))
		h.raw("</div>")

		if len(components) == 0 {
			h.element("p", "text-muted-foreground", "No components in this category yet.")
			return h.err
		}

		h.raw(`<div class="space-y-8" data-role="blocks">`)
		for i, c := range components {
			writeBlockCard(h, i, c)
		}
		h.raw("</div>")
		return h.err
	})
}

func writeBlockCard(h *htmlWriter, index int, c catalog.ComponentRecord) {
	h.raw("<article")
	h.attr("id", c.ID)
	h.attr("data-block", c.ID)
	h.raw(` class="overflow-hidden rounded-2xl border">`)

	h.raw(`<header class="flex items-center gap-4 border-b p-6">`)
	h.element("span", "flex h-10 w-10 items-center justify-center rounded-lg bg-primary/10 text-sm font-bold",
		fmt.Sprintf("%02d", index+1))
	h.link("#"+c.ID, "text-xl font-semibold hover:underline", c.Name)
	h.raw("</header>")

	h.raw(`<div class="relative aspect-video overflow-hidden bg-muted">`)
	if c.Kind == catalog.KindDirectory {
		h.element("p", "p-6 text-sm text-muted-foreground", "Multi-file block. Preview is not available.")
	} else {
		h.raw("<iframe")
		h.attr("src", PreviewPath(c.ID))
		h.attr("title", c.Name+" preview")
		h.attr("loading", "lazy")
		h.raw(` class="pointer-events-none absolute inset-0 h-[200%] w-[200%] origin-top-left scale-50"></iframe>`)
	}
	h.raw("</div>")

	kind := "Single file"
	if c.Kind == catalog.KindDirectory {
		kind = "Multi-file"
	}
	h.raw(`<footer class="flex items-center justify-between border-t p-4 text-xs text-muted-foreground">`)
	h.element("span", "", kind)
	h.element("span", "font-medium text-primary", "#"+c.ID)
	h.raw("</footer></article>")
}

// NotFoundPage renders the body of a 404 response.
func NotFoundPage(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="space-y-4 py-24 text-center">`)
		h.element("h1", "text-4xl font-bold", "Page not found")
		h.element("p", "text-muted-foreground", message)
		h.link("/blocks", "text-primary hover:underline", "Browse all blocks")
		h.raw("</div>")
		return h.err
	})
}
