// Package server is the gallery web server: it renders the catalog with the
// renderer components, serves block preview frames, exposes health and
// Prometheus endpoints, and pushes reload notifications over websockets
// when the content directory changes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/config"
	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/rayyanquantum/rayui/internal/logging"
	"github.com/rayyanquantum/rayui/internal/renderer"
	"github.com/rayyanquantum/rayui/internal/watcher"
)

const (
	watchDebounce   = 300 * time.Millisecond
	shutdownTimeout = 5 * time.Second
)

// Snapshot is one loaded view of the catalog. It is never modified after
// it is published.
type Snapshot struct {
	Records    []catalog.ComponentRecord
	Categories []catalog.CategoryRecord
	LoadedAt   time.Time

	byCategory map[string][]catalog.ComponentRecord
}

func newSnapshot(records []catalog.ComponentRecord, loadedAt time.Time) *Snapshot {
	groups := catalog.GroupByCategory(records, catalog.DefaultCategories())

	snap := &Snapshot{
		Records:    records,
		Categories: make([]catalog.CategoryRecord, len(groups)),
		LoadedAt:   loadedAt,
		byCategory: make(map[string][]catalog.ComponentRecord, len(groups)),
	}
	for i, g := range groups {
		snap.Categories[i] = g.Category
		snap.byCategory[g.Category.ID] = g.Components
	}
	return snap
}

// Category returns the aggregated category and its records.
func (s *Snapshot) Category(id string) (catalog.CategoryRecord, []catalog.ComponentRecord, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, s.byCategory[id], true
		}
	}
	return catalog.CategoryRecord{}, nil, false
}

// Server serves the gallery.
type Server struct {
	cfg     *config.Config
	site    renderer.Site
	pages   map[string]renderer.StaticPage
	logger  logging.Logger
	errs    *errors.ErrorHandler
	metrics *Metrics
	hub     *Hub
	now     func() time.Time

	mu       sync.RWMutex
	snapshot *Snapshot

	serverMu   sync.Mutex
	httpServer *http.Server
	watcher    *watcher.FileWatcher
}

// New creates a server and loads the catalog once. A missing catalog file
// yields an empty gallery; an unparsable one is an error.
func New(cfg *config.Config, logger logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.WithComponent("server")

	site := renderer.SiteFromConfig(cfg.Site)
	metrics := NewMetrics()

	s := &Server{
		cfg:     cfg,
		site:    site,
		pages:   renderer.StaticPages(site),
		logger:  logger,
		errs:    errors.NewErrorHandler(logger),
		metrics: metrics,
		hub:     NewHub(cfg.Server.AllowedOrigins, metrics, logger),
		now:     time.Now,
	}

	if err := s.Reload(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the catalog view currently being served.
func (s *Server) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Reload reads the catalog file and swaps in a new snapshot. On failure
// the previous snapshot keeps being served.
func (s *Server) Reload(ctx context.Context) error {
	path := s.cfg.Content.Catalog

	var records []catalog.ComponentRecord
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.logger.Warn(ctx, nil, "Catalog file not found, serving an empty gallery", "path", path)
	} else {
		records, err = catalog.Load(path)
		if err != nil {
			s.metrics.catalogReloads.WithLabelValues("failure").Inc()
			return err
		}
	}

	for _, issue := range catalog.Validate(records, catalog.DefaultCategories()) {
		s.logger.Warn(ctx, nil, "Catalog issue", "record", issue.RecordID, "issue", issue.Message)
	}

	snap := newSnapshot(records, s.now())

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.metrics.catalogReloads.WithLabelValues("success").Inc()
	s.metrics.catalogComponents.Set(float64(len(records)))
	s.logger.Info(ctx, "Catalog loaded", "components", len(records), "path", path)
	return nil
}

// Start serves HTTP on the configured address until ctx is done, then
// shuts down gracefully. With watching enabled, content changes reload the
// catalog and notify connected browsers.
func (s *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.hub.Run(ctx)

	if s.cfg.Server.Watch {
		if err := s.startWatcher(ctx); err != nil {
			return err
		}
		defer s.watcher.Stop()
	}

	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.serverMu.Lock()
	s.httpServer = srv
	s.serverMu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info(ctx, "Gallery server listening", "addr", srv.Addr, "watch", s.cfg.Server.Watch)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.NewInternalError(errors.ErrCodeInternalError,
				fmt.Sprintf("server on %s failed", srv.Addr), err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.serverMu.Lock()
	srv := s.httpServer
	s.serverMu.Unlock()

	if srv == nil {
		return nil
	}
	s.logger.Info(ctx, "Shutting down gallery server")
	return srv.Shutdown(ctx)
}

func (s *Server) startWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(watchDebounce, s.logger)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeInternalError, "failed to create content watcher", err)
	}

	fw.AddFilter(watcher.ContentFilter)
	fw.AddFilter(watcher.NoTempFilter)
	fw.AddHandler(s.handleContentChange)

	if err := fw.AddRecursive(s.cfg.Content.Dir); err != nil {
		fw.Stop()
		return errors.WrapFileSystem(err, errors.ErrCodeInvalidPath, "failed to watch content directory", s.cfg.Content.Dir)
	}

	fw.Start(ctx)
	s.watcher = fw
	return nil
}

func (s *Server) handleContentChange(ctx context.Context, events []watcher.ChangeEvent) error {
	for _, e := range events {
		s.logger.Debug(ctx, "Content changed", "path", e.Path, "type", e.Type.String())
	}

	if err := s.Reload(ctx); err != nil {
		return err
	}

	msg := UpdateMessage{Type: "reload"}
	if len(events) == 1 {
		msg.Target = events[0].Path
	}
	s.hub.Broadcast(ctx, msg)
	return nil
}
