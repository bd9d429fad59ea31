// Package static serves the embedded stylesheet and scripts with validators
// computed once at startup.
package static

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// assetInfo holds the validators sent with an asset.
type assetInfo struct {
	ETag         string
	Size         int64
	LastModified time.Time
}

// Cache serves files from an fs.FS. The file set is fixed, so the index is
// built once and never written again.
type Cache struct {
	fsys    fs.FS
	entries map[string]assetInfo
}

// NewCache hashes every file in fsys.
func NewCache(fsys fs.FS) (*Cache, error) {
	c := &Cache{
		fsys:    fsys,
		entries: make(map[string]assetInfo),
	}

	started := time.Now()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := hashFile(fsys, p)
		if err != nil {
			return err
		}
		if info.LastModified.IsZero() {
			// Embedded files carry no mod time.
			info.LastModified = started
		}
		c.entries[p] = info
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func hashFile(fsys fs.FS, p string) (assetInfo, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return assetInfo{}, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return assetInfo{}, err
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return assetInfo{}, err
	}
	return assetInfo{
		ETag:         fmt.Sprintf("%q", fmt.Sprintf("%x", h.Sum(nil))),
		Size:         st.Size(),
		LastModified: st.ModTime().UTC().Truncate(time.Second),
	}, nil
}

// Handler serves the file named by the request path after prefix.
func (s *Cache) Handler(prefix string) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := strings.TrimPrefix(c.Request().URL.Path, prefix)
		ci, ok := s.entries[name]
		if !ok {
			return echo.ErrNotFound
		}

		if inm := c.Request().Header.Get("If-None-Match"); inm != "" && inm == ci.ETag {
			return c.NoContent(http.StatusNotModified)
		}
		if ims := c.Request().Header.Get(echo.HeaderIfModifiedSince); ims != "" {
			if t, err := http.ParseTime(ims); err == nil && !ci.LastModified.After(t) {
				return c.NoContent(http.StatusNotModified)
			}
		}

		ext := path.Ext(name)
		h := c.Response().Header()
		h.Set(echo.HeaderCacheControl, cacheControl(ext))
		h.Set("ETag", ci.ETag)
		h.Set(echo.HeaderLastModified, ci.LastModified.Format(http.TimeFormat))

		f, err := s.fsys.Open(name)
		if err != nil {
			return echo.ErrNotFound
		}
		defer f.Close()

		contentType := mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = echo.MIMEOctetStream
		}
		return c.Stream(http.StatusOK, contentType, f)
	}
}

// cacheControl picks a policy by file type. Stylesheets and scripts are not
// fingerprinted and must be revalidated.
func cacheControl(ext string) string {
	switch ext {
	case ".css", ".js":
		return "no-cache, must-revalidate"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".woff", ".woff2", ".ttf":
		return "public, max-age=31536000, stale-while-revalidate=86400"
	default:
		return "public, max-age=3600, stale-while-revalidate=300"
	}
}
