// Package templates embeds the HTML pages so the binary (and the handler
// tests) render without depending on the working directory.
package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
}

// Must parses all embedded pages, panicking on malformed markup.
func Must() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))
}
