package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/interview-deck/internal/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// previewPlaceholder is rendered for an empty editor field.
const previewPlaceholder = "*开始输入内容...*"

// Views renders the embedded page templates. It implements echo.Renderer.
type Views struct {
	templates *template.Template
}

func NewViews(renderer *markdown.Renderer) (*Views, error) {
	funcs := template.FuncMap{
		"strip":    markdown.StripMarkdown,
		"markdown": renderer.Render,
		"preview": func(src string) (template.HTML, error) {
			if strings.TrimSpace(src) == "" {
				src = previewPlaceholder
			}
			return renderer.Render(src)
		},
	}

	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Views{templates: t}, nil
}

func (v *Views) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return v.templates.ExecuteTemplate(w, name, data)
}
