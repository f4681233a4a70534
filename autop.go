package autop

import (
	"context"
	"fmt"
	"sync"

	"github.com/alnah/go-autop/internal/assets"
	"github.com/alnah/go-autop/internal/pipeline"
)

// Formatter converts text to paragraphed HTML.
// Create with NewFormatter. The zero value is not usable.
type Formatter struct {
	autop    pipeline.Autop
	template string

	renderer func() (*pipeline.DocumentRenderer, error)
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLineBreaks controls whether single newlines become <br />.
// Enabled by default.
func WithLineBreaks(enabled bool) Option {
	return func(f *Formatter) {
		f.autop.LineBreaks = enabled
	}
}

// WithTemplate sets the html/template page layout used by Render.
// The template receives .Title, .Lang, .CSS and .Body.
func WithTemplate(content string) Option {
	return func(f *Formatter) {
		f.template = content
	}
}

// Document describes the page Render wraps output in.
type Document struct {
	Title string
	Lang  string // defaults to "en"
	CSS   string // inlined into a <style> block when non-empty
}

// NewFormatter creates a Formatter. Line breaks are enabled by default.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{autop: pipeline.Autop{LineBreaks: true}}

	for _, opt := range opts {
		opt(f)
	}

	f.renderer = sync.OnceValues(f.loadRenderer)
	return f
}

// Execute formats input. Input that is empty after trimming whitespace
// yields the empty string. Execute never fails: malformed markup passes
// through as written.
func (f *Formatter) Execute(input string) string {
	return f.autop.Run(input)
}

// Convert is Execute with a cancellation check, for use from worker pools.
// It returns ctx.Err() if ctx is already done.
func (f *Formatter) Convert(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.Execute(input), nil
}

// Render formats input and wraps it in a complete HTML page.
// If doc is nil, Render returns the formatted fragment.
func (f *Formatter) Render(ctx context.Context, input string, doc *Document) (string, error) {
	body, err := f.Convert(ctx, input)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return body, nil
	}

	r, err := f.renderer()
	if err != nil {
		return "", err
	}
	return r.WrapDocument(ctx, body, &pipeline.DocumentData{
		Title: doc.Title,
		Lang:  doc.Lang,
		CSS:   doc.CSS,
	})
}

// LineBreaks reports whether the formatter inserts <br /> tags.
func (f *Formatter) LineBreaks() bool {
	return f.autop.LineBreaks
}

// loadRenderer parses the configured template, or the embedded default.
func (f *Formatter) loadRenderer() (*pipeline.DocumentRenderer, error) {
	content := f.template
	if content == "" {
		var err error
		content, err = assets.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
		}
	}

	r, err := pipeline.NewDocumentRenderer(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return r, nil
}

// Execute formats input with a one-off Formatter.
func Execute(input string, opts ...Option) string {
	return NewFormatter(opts...).Execute(input)
}
