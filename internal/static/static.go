// Package static serves the embedded front-end for the activities API.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

// IndexPath is where GET / sends the browser.
const IndexPath = "/static/index.html"

//go:embed web
var webFS embed.FS

// FS returns the embedded web assets rooted at the web directory.
func FS() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		// Only fails if the embed directive is wrong.
		panic(err)
	}
	return sub
}

// Handler serves the assets under the /static/ prefix.
func Handler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(FS())))
}

// Root redirects to the index page.
func Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}
