package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultPath is where the content document lives relative to the site root.
const DefaultPath = "content/site.json"

// StatusError reports a non-success HTTP response from the content fetch.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content: fetch %s: status %d", e.URL, e.Code)
}

// Loader fetches and parses the content document. Each call is a single
// fetch: no retries, no caching, no fallback document.
type Loader struct {
	// Source is either a filesystem path or an http(s) URL.
	Source string
	// HTTP is used for URL sources. Defaults to a client with a short timeout.
	HTTP *http.Client
}

// NewLoader builds a loader for the given source.
func NewLoader(source string) *Loader {
	return &Loader{
		Source: source,
		HTTP:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Load reads and parses the document from the configured source.
func (l *Loader) Load(ctx context.Context) (Document, error) {
	src := strings.TrimSpace(l.Source)
	if src == "" {
		src = DefaultPath
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return l.fetch(ctx, src)
	}
	return readFile(src)
}

func (l *Loader) fetch(ctx context.Context, url string) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("content: build request: %w", err)
	}
	// Bypass intermediary caches; every page view sees the current document.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	client := l.HTTP
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("content: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, &StatusError{URL: url, Code: resp.StatusCode}
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("content: parse %s: %w", url, err)
	}
	return doc, nil
}

func readFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("content: read %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("content: parse %s: %w", path, err)
	}
	return doc, nil
}
