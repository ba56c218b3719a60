// Package web holds the embedded HTML templates the pages render from.
package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func Templates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{
			"prettySize": prettySize,
		}).
		ParseFS(templatesFS, "templates/*.html")
}

func prettySize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
