package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"fieldnote.dev/consultant-site/internal/config"
	"fieldnote.dev/consultant-site/internal/content"
	mw "fieldnote.dev/consultant-site/internal/middleware"
	"fieldnote.dev/consultant-site/internal/render"
)

// site holds everything a request needs. The host markup is read once at
// startup; the content document is re-loaded on every page view.
type site struct {
	cfg    config.Config
	log    *zap.Logger
	loader *content.Loader
	page   []byte
}

func newRouter(cfg config.Config, logger *zap.Logger) (http.Handler, error) {
	page, err := os.ReadFile(cfg.Page)
	if err != nil {
		return nil, fmt.Errorf("read host page: %w", err)
	}
	s := &site{
		cfg:    cfg,
		log:    logger,
		loader: content.NewLoader(cfg.Content),
		page:   page,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets/", mw.Assets(cfg.AssetsDir)))
	r.Get("/content/site.json", s.contentFile)
	r.Get("/", s.home)

	return r, nil
}

// home runs the one-shot load → render pass. The year is set before the
// load so it survives a failed fetch; a load failure is logged and the page
// ships with its static defaults.
func (s *site) home(w http.ResponseWriter, r *http.Request) {
	page, err := render.ParsePage(bytes.NewReader(s.page))
	if err != nil {
		s.log.Error("parse host page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	render.SetYear(page, time.Now())

	if doc, err := s.loader.Load(r.Context()); err != nil {
		s.log.Error("load content", zap.Error(err))
	} else {
		render.Paint(page, doc)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.WriteTo(w); err != nil {
		s.log.Error("write page", zap.Error(err))
	}
}

// contentFile exposes the raw document with cache-bypass semantics so
// what the page renders is always the current file.
func (s *site) contentFile(w http.ResponseWriter, r *http.Request) {
	src := strings.TrimSpace(s.cfg.Content)
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	http.ServeFile(w, r, src)
}
