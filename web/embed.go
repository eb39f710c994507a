// Package web holds the HTML views rendered by the gin engine.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every embedded view. Each view is addressed by its file name, e.g. "students.html".
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templatesFS, "templates/*.html")
}
