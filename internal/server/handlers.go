package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/rayyanquantum/rayui/internal/export"
	"github.com/rayyanquantum/rayui/internal/renderer"
)

const themeCSS = `:root {
  --background: 0 0% 100%;
  --foreground: 240 10% 3.9%;
  --primary: 240 5.9% 10%;
  --muted: 240 4.8% 95.9%;
  --border: 240 5.9% 90%;
  --radius: 0.5rem;
}
body {
  background: hsl(var(--background));
  color: hsl(var(--foreground));
  font-family: ui-sans-serif, system-ui, sans-serif;
}
`

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(s.metrics.Middleware)

	r.Get("/", s.handleHome)
	r.Get("/blocks", s.handleBlocks)
	r.Get("/blocks/{category}", s.handleCategory)
	r.Get("/blocks/preview/{blockId}", s.handlePreview)
	r.Get("/blocks/docs/{blockId}", s.handleDoc)

	for slug, page := range s.pages {
		r.Get("/"+slug, s.handleStatic(page))
	}

	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/robots.txt", s.handleRobots)
	r.Get("/rayui-theme.css", handleTheme)
	for _, alias := range []string{"/og", "/og.png", "/og-image"} {
		r.Get(alias, s.handleOGImage)
	}

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Method(http.MethodGet, "/ws", s.hub)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.notFound(w, r, "The page you are looking for does not exist.")
	})

	return r
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, meta renderer.Meta, body templ.Component) {
	page := renderer.Layout(s.site, meta, s.cfg.Server.Watch, body)
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, message string) {
	meta := renderer.Meta{Title: "Not Found - " + s.site.Name, NoIndex: true}
	s.render(w, r, http.StatusNotFound, meta, renderer.NotFoundPage(message))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	s.render(w, r, http.StatusOK, renderer.HomeMeta(s.site, snap.Categories),
		renderer.HomePage(s.site, snap.Categories))
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	s.render(w, r, http.StatusOK, renderer.BlocksMeta(s.site, snap.Categories),
		renderer.BlocksPage(snap.Categories))
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category")

	category, components, ok := s.Snapshot().Category(id)
	if !ok {
		s.notFound(w, r, fmt.Sprintf("There is no %q category.", id))
		return
	}

	s.render(w, r, http.StatusOK, renderer.CategoryMeta(s.site, category),
		renderer.CategoryPage(category, components))
}

// handlePreview serves the HTML draft of a single-file block for the
// preview frame on its category page.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "blockId")

	rec, ok := catalog.Find(s.Snapshot().Records, id)
	if !ok {
		s.notFound(w, r, fmt.Sprintf("There is no %q block.", id))
		return
	}
	if rec.Kind == catalog.KindDirectory {
		s.notFound(w, r, fmt.Sprintf("Block %q spans several files and has no preview.", id))
		return
	}

	path := rec.SourcePath(s.cfg.Content.ComponentsDir())
	src, err := os.ReadFile(path)
	if err != nil {
		s.errs.Handle(r.Context(), errors.WrapRead(err, path).WithContext("block", id))
		s.notFound(w, r, fmt.Sprintf("The source of block %q is missing.", id))
		return
	}

	draft := export.ToHTML(string(src), rec.Name)
	body := strings.Replace(draft.Body, "<head>",
		"<head>\n  <meta name=\"robots\" content=\"noindex, nofollow\">", 1)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Robots-Tag", "noindex, nofollow")
	_, _ = w.Write([]byte(body))
}

// handleDoc renders the markdown stub written next to a block by the
// scaffold generator.
func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "blockId")

	snap := s.Snapshot()
	rec, ok := catalog.Find(snap.Records, id)
	if !ok {
		s.notFound(w, r, fmt.Sprintf("There is no %q block.", id))
		return
	}

	path := filepath.Join(s.cfg.Content.MarkdownDir(), rec.Category, rec.ID+".mdx")
	data, err := os.ReadFile(path)
	if err != nil {
		s.notFound(w, r, fmt.Sprintf("Block %q has no documentation.", id))
		return
	}

	doc, err := renderer.ParseDoc(data)
	if err != nil {
		s.errs.Handle(r.Context(), errors.NewReadError(errors.ErrCodeReadFile, "failed to parse documentation", err).WithPath(path))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	category, _, ok := snap.Category(rec.Category)
	if !ok {
		category = catalog.CategoryRecord{ID: rec.Category, Name: rec.Category}
	}
	s.render(w, r, http.StatusOK, renderer.DocMeta(s.site, rec, doc), renderer.DocPage(category, rec, doc))
}

func (s *Server) handleStatic(page renderer.StaticPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusOK, page.Meta(s.site), page.Component())
	}
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	data, err := renderer.Sitemap(s.site, snap.Categories, snap.LoadedAt)
	if err != nil {
		s.errs.Handle(r.Context(), errors.NewInternalError(errors.ErrCodeInternalError, "failed to render sitemap", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /blocks/preview/\n\nSitemap: %s\n",
		s.site.Absolute("/sitemap.xml"))
}

func handleTheme(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(themeCSS))
}

func (s *Server) handleOGImage(w http.ResponseWriter, r *http.Request) {
	if s.site.OGImage == "" {
		s.notFound(w, r, "No Open Graph image is configured.")
		return
	}
	http.Redirect(w, r, s.site.OGImage, http.StatusMovedPermanently)
}

type healthResponse struct {
	Status     string `json:"status"`
	Components int    `json:"components"`
	Categories int    `json:"categories"`
	LoadedAt   string `json:"loaded_at"`
	Clients    int    `json:"clients"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	resp := healthResponse{
		Status:     "ok",
		Components: len(snap.Records),
		Categories: len(snap.Categories),
		LoadedAt:   snap.LoadedAt.UTC().Format(time.RFC3339),
		Clients:    s.hub.ClientCount(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to write health response")
	}
}
