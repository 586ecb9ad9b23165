// Package views holds the HTML templates rendered by the server.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// DefaultLayout wraps every page unless a handler names another layout.
const DefaultLayout = "layouts/main"

// Engine returns a template engine over the embedded templates.
// Template names are paths below templates/ without the extension, e.g. "users/list".
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
