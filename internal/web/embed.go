// Package web embeds the server-rendered HTML templates for the HR
// dashboard. Pages are standalone Bootstrap documents; the handlers pass
// fully-typed view models, so templates contain no logic beyond iteration
// and conditionals.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

// Templates parses the embedded page templates. It panics on a malformed
// template, which is a build defect rather than a runtime condition.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html.tmpl"))
}
