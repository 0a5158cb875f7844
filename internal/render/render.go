package render

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the embedded HTML templates for the grid, compare,
// single and full-page surfaces. All comparison data is flattened into
// plain view structs before execution; templates hold no lookup logic.
type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) Grid(data *GridData) (string, error) {
	return r.execute("grid", data)
}

func (r *Renderer) Compare(data *CompareData) (string, error) {
	return r.execute("compare", data)
}

func (r *Renderer) Single(data *SingleData) (string, error) {
	return r.execute("single", data)
}

func (r *Renderer) Page(data *PageData) (string, error) {
	return r.execute("page", data)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.tpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}

// ErrorFragment is the inline error shown in place of a surface. The host
// page keeps rendering around it.
func ErrorFragment(msg string) string {
	return `<p class="comparator-error">` + html.EscapeString(msg) + `</p>`
}
