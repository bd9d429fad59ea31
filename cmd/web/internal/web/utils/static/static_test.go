package static

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"testing/fstest"
	"time"

	"checkershub.com/checkers/static"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestNewCache_Embedded(t *testing.T) {
	t.Parallel()

	cache, err := NewCache(static.FS)
	require.NoError(t, err)

	ci, ok := cache.entries["dist/main.css"]
	require.True(t, ok, "expected dist/main.css to be embedded")
	require.True(t, regexp.MustCompile(`^"[0-9a-f]{64}"$`).MatchString(ci.ETag))
	require.Positive(t, ci.Size)
	require.False(t, ci.LastModified.IsZero())
}

func serve(t *testing.T, cache *Cache, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	err := cache.Handler("/static/")(e.NewContext(req, rec))
	if err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}
	return rec
}

func TestHandler(t *testing.T) {
	t.Parallel()

	mod := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cache, err := NewCache(fstest.MapFS{
		"dist/main.css": {Data: []byte("body{}"), ModTime: mod},
		"img/logo.png":  {Data: []byte{0x89, 'P', 'N', 'G'}, ModTime: mod},
	})
	require.NoError(t, err)

	t.Run("serves with validators", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, cache, "/static/dist/main.css", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "body{}", rec.Body.String())
		require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
		require.Equal(t, "no-cache, must-revalidate", rec.Header().Get(echo.HeaderCacheControl))
		require.NotEmpty(t, rec.Header().Get("ETag"))
	})

	t.Run("long lived images", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, cache, "/static/img/logo.png", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get(echo.HeaderCacheControl), "max-age=31536000")
	})

	t.Run("etag match", func(t *testing.T) {
		t.Parallel()
		first := serve(t, cache, "/static/dist/main.css", nil)
		rec := serve(t, cache, "/static/dist/main.css", http.Header{
			"If-None-Match": {first.Header().Get("ETag")},
		})
		require.Equal(t, http.StatusNotModified, rec.Code)
	})

	t.Run("not modified since", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, cache, "/static/dist/main.css", http.Header{
			echo.HeaderIfModifiedSince: {mod.Format(http.TimeFormat)},
		})
		require.Equal(t, http.StatusNotModified, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, cache, "/static/dist/nope.js", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
