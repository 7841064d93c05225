package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerEmitsOneEntryPerRequest(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/somewhere", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 203.0.113.7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected status %d, got %v", http.StatusTeapot, fields["status"])
	}
	if fields["path"] != "/somewhere" {
		t.Fatalf("expected path /somewhere, got %v", fields["path"])
	}
	if fields["remote_ip"] != "203.0.113.7" {
		t.Fatalf("expected last forwarded address, got %v", fields["remote_ip"])
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*http.Request)
		want   string
	}{
		{"remote addr", func(r *http.Request) { r.RemoteAddr = "198.51.100.4:1234" }, "198.51.100.4"},
		{"x-real-ip", func(r *http.Request) { r.Header.Set("X-Real-IP", "203.0.113.9") }, "203.0.113.9"},
		{"forwarded chain", func(r *http.Request) {
			r.Header.Set("X-Forwarded-For", "10.0.0.1, 203.0.113.7")
		}, "203.0.113.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.mutate(req)
			if got := clientIP(req); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestAssetsETagRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	handler := Assets(dir)

	req := httptest.NewRequest(http.MethodGet, "/app.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag")
	}

	req = httptest.NewRequest(http.MethodGet, "/app.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rec.Code)
	}
}

func TestAssetsMissingFile(t *testing.T) {
	t.Parallel()

	handler := Assets(t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/missing.js", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
