package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"fieldnote.dev/consultant-site/internal/config"
)

const testPage = `<!doctype html>
<html><head><title>t</title></head><body>
<h1 id="site-name">Your Name</h1>
<p id="site-title">AI Consultant</p>
<p id="site-location">Remote</p>
<div id="bio-summary"></div>
<ul id="bio-highlights"></ul>
<p id="services-intro"></p>
<div id="services-cards"></div>
<p id="projects-intro"></p>
<div id="projects-cards"></div>
<section id="contact">
  <a id="contact-email" href="#contact">Get in touch</a>
  <a id="contact-linkedin" href="#">LinkedIn</a>
  <a id="contact-github" href="#">GitHub</a>
  <div id="fillout-embed" hidden></div>
  <iframe id="fillout-iframe" hidden></iframe>
  <p id="fillout-placeholder">Contact form coming soon.</p>
</section>
<footer><p id="footer-text">&copy; <span id="footer-year"></span></p></footer>
</body></html>`

// newTestRouter builds a router over a temp site tree, like main() does.
func newTestRouter(t *testing.T, contentJSON string) http.Handler {
	t.Helper()
	dir := t.TempDir()

	pagePath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(pagePath, []byte(testPage), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
	contentPath := filepath.Join(dir, "site.json")
	if err := os.WriteFile(contentPath, []byte(contentJSON), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	assetsDir := filepath.Join(dir, "assets")
	if err := os.MkdirAll(filepath.Join(assetsDir, "css"), 0o755); err != nil {
		t.Fatalf("mkdir assets: %v", err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "css", "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}

	cfg := config.Config{
		Addr:      ":0",
		Content:   contentPath,
		Page:      pagePath,
		AssetsDir: assetsDir,
	}
	handler, err := newRouter(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newRouter failed: %v", err)
	}
	return handler
}

func TestHealthzOK(t *testing.T) {
	srv := newTestRouter(t, `{}`)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
}

func TestHomeRendersContent(t *testing.T) {
	srv := newTestRouter(t, `{
		"bio": {"name": "Ada Lovelace", "title": "Analytical Engineer", "location": "London"},
		"services": {"intro": "What I offer."}
	}`)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html, got %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"Ada Lovelace", "Analytical Engineer", "London", "What I offer."} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q; body=%s", want, body)
		}
	}
}

func TestHomeRendersDefaultsOnEmptyDocument(t *testing.T) {
	srv := newTestRouter(t, `{}`)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Your Name", "AI Consultant", "Remote"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected default %q in body", want)
		}
	}
}

func TestHomeSurvivesBrokenContent(t *testing.T) {
	srv := newTestRouter(t, `{"bio":`)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	// A broken document must not take the page down.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite broken content, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Your Name") {
		t.Fatalf("expected static page content; body=%s", rec.Body.String())
	}
}

func TestContentFileServedWithoutCaching(t *testing.T) {
	srv := newTestRouter(t, `{"bio":{"name":"Ada Lovelace"}}`)
	req := httptest.NewRequest(http.MethodGet, "/content/site.json", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("expected Cache-Control no-store, got %q", cc)
	}
	if !strings.Contains(rec.Body.String(), "Ada Lovelace") {
		t.Fatalf("expected document body; got %s", rec.Body.String())
	}
}

func TestAssetsServedWithCaching(t *testing.T) {
	srv := newTestRouter(t, `{}`)
	req := httptest.NewRequest(http.MethodGet, "/assets/css/style.css", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age") {
		t.Fatalf("expected caching headers on assets, got %q", cc)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected an ETag on asset responses")
	}

	// Conditional revalidation.
	req = httptest.NewRequest(http.MethodGet, "/assets/css/style.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304 for matching ETag, got %d", rec.Code)
	}
}
