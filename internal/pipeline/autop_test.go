package pipeline

import (
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const exampleInput = "text from database\nwith carriage returns\n instead of paragraph tags.\n\nNew paragraph."

// ---------------------------------------------------------------------------
// TestAutop_Run - End to end
// ---------------------------------------------------------------------------

func TestAutop_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		lineBreaks bool
		expected   string
	}{
		{
			name:       "empty",
			input:      "",
			lineBreaks: true,
			expected:   "",
		},
		{
			name:       "whitespace only",
			input:      "  \n\t ",
			lineBreaks: true,
			expected:   "",
		},
		{
			name:       "paragraphs with line breaks",
			input:      exampleInput,
			lineBreaks: true,
			expected: "<p>text from database<br />\nwith carriage returns<br />\n instead of paragraph tags.</p>\n" +
				"<p>New paragraph.</p>\n",
		},
		{
			name:       "paragraphs without line breaks",
			input:      exampleInput,
			lineBreaks: false,
			expected: "<p>text from database\nwith carriage returns\n instead of paragraph tags.</p>\n" +
				"<p>New paragraph.</p>\n",
		},
		{
			name:       "crlf blank line",
			input:      "a\r\n\r\nb",
			lineBreaks: true,
			expected:   "<p>a</p>\n<p>b</p>\n",
		},
		{
			name:       "block element then text",
			input:      "<div>a</div>b",
			lineBreaks: true,
			expected:   "<div>a</div>\n<p>b</p>\n",
		},
		{
			name:       "list left unwrapped",
			input:      "<ul>\n<li>one</li>\n<li>two</li>\n</ul>",
			lineBreaks: true,
			expected:   "<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n",
		},
		{
			name:       "blockquote gets inner paragraph",
			input:      "<blockquote>quoted</blockquote>",
			lineBreaks: true,
			expected:   "<blockquote><p>quoted</p></blockquote>\n",
		},
		{
			name:       "pre content untouched",
			input:      "abc<pre>\ndef\n</pre>ghi",
			lineBreaks: true,
			expected:   "<p>abc\n<pre>\ndef\n</pre>\n<p>ghi</p>\n",
		},
		{
			name:       "newline inside tag restored",
			input:      "<a\nhref=\"x\">link</a>\ntext",
			lineBreaks: true,
			expected:   "<p><a\nhref=\"x\">link</a><br />\ntext</p>\n",
		},
		{
			name:       "more marker",
			input:      "Intro<!--more-->Rest",
			lineBreaks: true,
			expected:   "<p>Intro<div class=\"clear-both\"></div>Rest</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Autop{LineBreaks: tt.lineBreaks}.Run(tt.input)
			if got != tt.expected {
				t.Errorf("Run(%q) =\n  %q\nwant\n  %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAutop_RunPreBlocks - Preformatted content survives byte for byte
// ---------------------------------------------------------------------------

func TestAutop_RunPreBlocks(t *testing.T) {
	t.Parallel()

	blocks := []string{
		"<pre>\n\n  indented\n\n\tand tabbed\n</pre>",
		"<pre class=\"go\">if x {\r\n}\r\n<br><br></pre>",
		"<pre><div>\n\nnot a block</div><!--more--></pre>",
	}

	for _, block := range blocks {
		input := "before\n\n" + block + "\n\nafter"
		for _, lb := range []bool{true, false} {
			got := Autop{LineBreaks: lb}.Run(input)
			if !strings.Contains(got, block) {
				t.Errorf("Run(lineBreaks=%v) lost pre block %q:\n%s", lb, block, got)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestAutop_RunStructure - Parsed output
// ---------------------------------------------------------------------------

func TestAutop_RunStructure(t *testing.T) {
	t.Parallel()

	input := "First line\nsecond line\n\nSecond paragraph\n\n\n\nThird <em>paragraph</em>"
	out := Autop{LineBreaks: true}.Run(input)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	paragraphs := doc.Find("p")
	if paragraphs.Length() != 3 {
		t.Fatalf("got %d paragraphs, want 3:\n%s", paragraphs.Length(), out)
	}

	wantText := []string{"First line\nsecond line", "Second paragraph", "Third paragraph"}
	paragraphs.Each(func(i int, p *goquery.Selection) {
		if got := p.Text(); got != wantText[i] {
			t.Errorf("paragraph %d text = %q, want %q", i, got, wantText[i])
		}
	})

	if n := paragraphs.First().Find("br").Length(); n != 1 {
		t.Errorf("first paragraph has %d <br>, want 1", n)
	}
	if n := doc.Find("em").Length(); n != 1 {
		t.Errorf("inline markup lost: %d <em>", n)
	}

	stats, err := Inspect(out)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if !stats.Balanced() {
		t.Errorf("unbalanced tags %v in:\n%s", stats.Unbalanced, out)
	}
}

// ---------------------------------------------------------------------------
// TestAutop_RunBalanced - Plain prose always yields balanced paragraphs
// ---------------------------------------------------------------------------

func TestAutop_RunBalanced(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"one",
		"one\ntwo",
		"one\n\ntwo\n\n\nthree",
		"\n\n\nleading blank lines",
		"trailing blank lines\n\n\n",
		"windows\r\nline\r\n\r\nendings",
		"<div>block</div>\n\ntext after\n\n<h2>heading</h2>",
	}

	for _, in := range inputs {
		for _, lb := range []bool{true, false} {
			out := Autop{LineBreaks: lb}.Run(in)
			stats, err := Inspect(out)
			if err != nil {
				t.Fatalf("Inspect(%q) error = %v", out, err)
			}
			if !stats.Balanced() {
				t.Errorf("Run(%q, lineBreaks=%v) = %q has unbalanced %v", in, lb, out, stats.Unbalanced)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestAutop_RunConcurrent - Shared value across goroutines
// ---------------------------------------------------------------------------

func TestAutop_RunConcurrent(t *testing.T) {
	t.Parallel()

	a := Autop{LineBreaks: true}
	want := a.Run(exampleInput)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := a.Run(exampleInput); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent Run() = %q, want %q", got, want)
	}
}
