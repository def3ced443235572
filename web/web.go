// Package web embeds the static frontend served under /static/.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves the embedded frontend assets. Mount it at the site root;
// asset paths already carry the /static/ prefix.
func Handler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
