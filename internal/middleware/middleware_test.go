package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMXFlagsRequests(t *testing.T) {
	var saw bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		saw = IsHTMX(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, saw)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, saw)
}

func TestWriteErrorNegotiatesJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusNotFound, "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadRequest, "bad")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithHTMX(req.Context(), true))
	rec = httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadRequest, "bad")
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestAssetsWithCacheETag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644))
	h := AssetsWithCache(dir)

	req := httptest.NewRequest(http.MethodGet, "/site.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	et := rec.Header().Get("ETag")
	require.True(t, strings.HasPrefix(et, `W/"`), "expected weak etag, got %q", et)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age")

	req = httptest.NewRequest(http.MethodGet, "/site.css", nil)
	req.Header.Set("If-None-Match", et)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestAssetsWithCacheRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	h := AssetsWithCache(dir)
	req := httptest.NewRequest(http.MethodGet, "/missing.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("ETag"))
}

func TestLoggerCapturesStatus(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
