// Package autop turns loosely formatted text into paragraphed HTML.
//
// Blank lines become paragraph boundaries and, optionally, single newlines
// become <br /> line breaks. Existing block-level markup, comments, CDATA
// sections and <pre> content pass through untouched. This is the
// transformation WordPress calls wpautop.
//
// # Quick Start
//
//	out := autop.Execute("First paragraph.\n\nSecond paragraph.")
//	// <p>First paragraph.</p>
//	// <p>Second paragraph.</p>
//
// # Configuration
//
// Use functional options to customize the formatter:
//
//	f := autop.NewFormatter(autop.WithLineBreaks(false))
//	out := f.Execute(input)
//
// A Formatter is immutable and safe for concurrent use, so one instance can
// serve any number of goroutines.
//
// # Standalone Documents
//
// Render formats input and wraps the result in a complete HTML page built
// from the embedded template:
//
//	page, err := f.Render(ctx, input, &autop.Document{
//	    Title: "Notes",
//	    CSS:   "body { max-width: 40rem; }",
//	})
//
// # Parallel Processing
//
// For batch conversion, size a worker pool with ResolveWorkers and share one
// Formatter between the workers. Convert honours context cancellation
// between documents.
package autop
