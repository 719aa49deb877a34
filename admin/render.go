package admin

import (
	"embed"
	"html/template"

	"dialeradmin/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"hms":   utils.HMS,
	"query": Query,
	"add":   func(a, b int) int { return a + b },
	"sub":   func(a, b int) int { return a - b },
}

// Templates - every admin page, named by file name, for gin's HTML renderer
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
