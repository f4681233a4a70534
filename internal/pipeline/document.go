package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrDocumentRender indicates the page template failed to execute.
var ErrDocumentRender = errors.New("document template rendering failed")

// DefaultLang is the document language used when none is given.
const DefaultLang = "en"

// DocumentData describes the page a fragment is wrapped in.
type DocumentData struct {
	Title string
	Lang  string // defaults to DefaultLang
	CSS   string // inlined into a <style> block when non-empty
}

// documentView is what the page template sees.
type documentView struct {
	Title string
	Lang  string
	CSS   template.CSS
	Body  template.HTML
}

// DocumentWrapper wraps formatted fragments into a complete HTML page.
type DocumentWrapper interface {
	WrapDocument(ctx context.Context, body string, data *DocumentData) (string, error)
}

// DocumentRenderer renders fragments through an html/template page layout.
type DocumentRenderer struct {
	tmpl *template.Template
}

// NewDocumentRenderer parses the page template.
// The template receives .Title, .Lang, .CSS and .Body.
func NewDocumentRenderer(tmplContent string) (*DocumentRenderer, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &DocumentRenderer{tmpl: tmpl}, nil
}

// WrapDocument renders body inside the page template.
// If data is nil, returns body unchanged.
// The body is trusted markup produced by Autop and is inserted unescaped.
func (r *DocumentRenderer) WrapDocument(ctx context.Context, body string, data *DocumentData) (string, error) {
	if data == nil {
		return body, nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	lang := data.Lang
	if lang == "" {
		lang = DefaultLang
	}

	view := documentView{
		Title: data.Title,
		Lang:  lang,
		CSS:   template.CSS(sanitizeCSS(data.CSS)), // #nosec G203 -- closing sequences escaped
		Body:  template.HTML(body),                 // #nosec G203 -- formatter output
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface check.
var _ DocumentWrapper = (*DocumentRenderer)(nil)
