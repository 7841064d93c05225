package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path"
	"sync"
)

// Assets serves static files with long-lived cache headers and weak ETags.
// The content document is deliberately NOT served through this handler; it
// must bypass caches on every page view.
func Assets(dir string) http.Handler {
	var etags sync.Map
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")

		et := etagFor(&etags, dir, r.URL.Path)
		if et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}

func etagFor(cache *sync.Map, dir, urlPath string) string {
	if v, ok := cache.Load(urlPath); ok {
		return v.(string)
	}
	clean := path.Clean("/" + urlPath)
	et := fileETag(path.Join(dir, clean))
	cache.Store(urlPath, et)
	return et
}

func fileETag(p string) string {
	f, err := os.Open(p)
	if err != nil {
		return ""
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`
}
