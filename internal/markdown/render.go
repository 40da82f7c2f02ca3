package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Classes maps element names (h1, h2, h3, p, li, a, code, strong) to CSS classes.
type Classes map[string]string

// DefaultClasses is the annotation used by the study modal and the admin preview.
var DefaultClasses = Classes{
	"h1":     "md-heading md-h1",
	"h2":     "md-heading md-h2",
	"h3":     "md-heading md-h3",
	"p":      "md-text",
	"li":     "md-text",
	"a":      "md-link",
	"code":   "md-code",
	"strong": "md-strong",
}

type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer(classes Classes) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(
					util.Prioritized(&classTransformer{classes: classes}, 100),
				),
			),
		),
	}
}

// Render converts markdown to HTML. Raw HTML in src is not passed through.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return template.HTML(buf.String()), nil
}

type classTransformer struct {
	classes Classes
}

func (t *classTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	if len(t.classes) == 0 {
		return
	}

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if class, ok := t.classes[elementName(n)]; ok && class != "" {
			n.SetAttributeString("class", []byte(class))
		}

		return ast.WalkContinue, nil
	})
}

func elementName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Heading:
		return fmt.Sprintf("h%d", v.Level)
	case *ast.Paragraph:
		return "p"
	case *ast.ListItem:
		return "li"
	case *ast.Link:
		return "a"
	case *ast.CodeSpan:
		return "code"
	case *ast.Emphasis:
		if v.Level == 2 {
			return "strong"
		}
	}

	return ""
}
