package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// AssetsWithCache serves static files with long-lived cache headers and weak
// ETags. ETags are computed on first request and memoized; the asset set is
// immutable for the life of the process.
func AssetsWithCache(dir string) http.Handler {
	var (
		mu    sync.Mutex
		etags = map[string]string{}
	)
	lookup := func(urlPath string) string {
		mu.Lock()
		defer mu.Unlock()
		if et, ok := etags[urlPath]; ok {
			return et
		}
		rel := strings.TrimPrefix(urlPath, "/")
		if rel == "" || strings.Contains(rel, "..") {
			etags[urlPath] = ""
			return ""
		}
		et, err := fileETag(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			et = ""
		}
		etags[urlPath] = et
		return et
	}

	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
		if et := lookup(r.URL.Path); et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
