package renderer

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

const liveReloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function (event) {
    var msg = JSON.parse(event.data);
    if (msg.type === "reload") { location.reload(); }
  };
})();
</script>`

// NavLink is one entry of the header or footer navigation.
type NavLink struct {
	Label string
	Href  string
}

var footerLinks = []NavLink{
	{Label: "About", Href: "/about"},
	{Label: "Terms", Href: "/terms"},
	{Label: "Privacy", Href: "/privacy"},
	{Label: "License", Href: "/license"},
	{Label: "Contact", Href: "/contact"},
}

// Layout wraps body in the site chrome and writes meta into the head. When
// liveReload is set the page reconnects to /ws and reloads on change.
func Layout(site Site, meta Meta, liveReload bool, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(meta.Title)
		h.raw("</title>")
		writeHead(h, site, meta)
		h.raw(`<script src="` + tailwindCDN + `"></script>`)
		h.raw(`</head><body class="min-h-screen bg-background text-foreground antialiased">`)

		writeHeader(h, site)
		h.raw(`<main class="container mx-auto max-w-6xl px-4 py-10">`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw("</main>")
		writeFooter(h, site)

		if liveReload {
			h.raw(liveReloadScript)
		}
		h.raw("</body></html>")
		return h.err
	})
}

func writeHead(h *htmlWriter, site Site, meta Meta) {
	metaTag := func(key, name, content string) {
		if content == "" {
			return
		}
		h.raw("<meta")
		h.attr(key, name)
		h.attr("content", content)
		h.raw(">")
	}

	metaTag("name", "description", meta.Description)
	if len(meta.Keywords) > 0 {
		metaTag("name", "keywords", strings.Join(meta.Keywords, ", "))
	}
	if meta.NoIndex {
		metaTag("name", "robots", "noindex, nofollow")
	}
	if meta.Path != "" {
		h.raw(`<link rel="canonical"`)
		h.attr("href", site.Absolute(meta.Path))
		h.raw(">")
	}

	metaTag("property", "og:title", meta.ogTitle())
	metaTag("property", "og:description", meta.ogDescription())
	metaTag("property", "og:type", "website")
	metaTag("property", "og:site_name", site.Name)
	if meta.Path != "" {
		metaTag("property", "og:url", site.Absolute(meta.Path))
	}
	if site.OGImage != "" {
		metaTag("property", "og:image", site.OGImage)
		metaTag("property", "og:image:width", "1200")
		metaTag("property", "og:image:height", "630")
		metaTag("property", "og:image:alt", firstNonEmpty(meta.ImageAlt, site.Name))
	}

	metaTag("name", "twitter:card", "summary_large_image")
	metaTag("name", "twitter:title", meta.twitterTitle())
	metaTag("name", "twitter:description", meta.twitterDescription())
	metaTag("name", "twitter:site", site.Twitter)
	metaTag("name", "twitter:creator", site.Twitter)
	metaTag("name", "twitter:image", site.OGImage)

	for _, doc := range meta.JSONLD {
		data, err := json.Marshal(doc)
		if err != nil {
			h.err = err
			return
		}
		h.raw(`<script type="application/ld+json">`)
		h.raw(string(data))
		h.raw("</script>")
	}
}

func writeHeader(h *htmlWriter, site Site) {
	h.raw(`<header class="border-b"><nav class="container mx-auto flex max-w-6xl items-center justify-between px-4 py-4">`)
	h.link("/", "text-lg font-bold", site.Name)
	h.raw(`<div class="flex items-center gap-6 text-sm">`)
	h.link("/blocks", "hover:text-primary", "Blocks")
	h.link("/about", "hover:text-primary", "About")
	if site.GitHub != "" {
		h.link(site.GitHub, "hover:text-primary", "GitHub")
	}
	h.raw("</div></nav></header>")
}

func writeFooter(h *htmlWriter, site Site) {
	h.raw(`<footer class="border-t"><div class="container mx-auto flex max-w-6xl flex-wrap items-center justify-between gap-4 px-4 py-6 text-sm text-muted-foreground">`)
	h.element("p", "", site.Name+" - free copy-paste UI blocks.")
	h.raw(`<nav class="flex gap-4">`)
	for _, l := range footerLinks {
		h.link(l.Href, "hover:text-primary", l.Label)
	}
	h.raw("</nav></div></footer>")
}
