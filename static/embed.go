// Package static embeds the site's stylesheet and scripts.
package static

import "embed"

//go:embed dist
var FS embed.FS
