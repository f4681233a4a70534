package htmlsplit

import (
	"reflect"
	"strings"
	"testing"
)

func text(s string) Token    { return Token{Kind: Text, Value: s} }
func tag(s string) Token     { return Token{Kind: Tag, Value: s} }
func comment(s string) Token { return Token{Kind: Comment, Value: s} }
func cdata(s string) Token   { return Token{Kind: CData, Value: s} }

// ---------------------------------------------------------------------------
// TestSplit - Token boundaries
// ---------------------------------------------------------------------------

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "text only",
			input:    "plain text",
			expected: []Token{text("plain text")},
		},
		{
			name:     "tags between text",
			input:    "xx<h1>wf<h2>goh",
			expected: []Token{text("xx"), tag("<h1>"), text("wf"), tag("<h2>"), text("goh")},
		},
		{
			name:     "unterminated tag at end",
			input:    "xx<h1>wf<h2>goh<no ending",
			expected: []Token{text("xx"), tag("<h1>"), text("wf"), tag("<h2>"), text("goh"), tag("<no ending")},
		},
		{
			name:     "comment",
			input:    "aa<!-- comment -->bb",
			expected: []Token{text("aa"), comment("<!-- comment -->"), text("bb")},
		},
		{
			name:     "cdata",
			input:    "aa<![CDATA[comment]]>bb",
			expected: []Token{text("aa"), cdata("<![CDATA[comment]]>"), text("bb")},
		},
		{
			name:  "tags inside comment and cdata bodies",
			input: "<h1><!-- comment<x>\n -->wso<![CDATA[wpo[ <x> \nefjpw]]>e",
			expected: []Token{
				text(""), tag("<h1>"),
				text(""), comment("<!-- comment<x>\n -->"),
				text("wso"), cdata("<![CDATA[wpo[ <x> \nefjpw]]>"),
				text("e"),
			},
		},
		{
			name:  "mixed markup",
			input: "xx<h1>wf<h2>gohw</h1><!-- comment<x>\n -->wso<![CDATA[wpoefjpw]]>efj",
			expected: []Token{
				text("xx"), tag("<h1>"),
				text("wf"), tag("<h2>"),
				text("gohw"), tag("</h1>"),
				text(""), comment("<!-- comment<x>\n -->"),
				text("wso"), cdata("<![CDATA[wpoefjpw]]>"),
				text("efj"),
			},
		},
		{
			name:     "shortest comment",
			input:    "<!-->x",
			expected: []Token{text(""), comment("<!-->"), text("x")},
		},
		{
			name:     "dashes inside comment",
			input:    "<!--a--b- ->c-->d",
			expected: []Token{text(""), comment("<!--a--b- ->c-->"), text("d")},
		},
		{
			name:     "unterminated comment takes the rest",
			input:    "a<!-- never <b>closed",
			expected: []Token{text("a"), comment("<!-- never <b>closed")},
		},
		{
			name:     "unterminated cdata takes the rest",
			input:    "a<![CDATA[ x ]] >",
			expected: []Token{text("a"), cdata("<![CDATA[ x ]] >")},
		},
		{
			name:     "bracket before cdata terminator",
			input:    "<![CDATA[x]]]>y",
			expected: []Token{text(""), cdata("<![CDATA[x]]]>"), text("y")},
		},
		{
			name:     "bang without dashes is a tag",
			input:    "<!DOCTYPE html>a",
			expected: []Token{text(""), tag("<!DOCTYPE html>"), text("a")},
		},
		{
			name:     "lone angle bracket",
			input:    "a < b",
			expected: []Token{text("a "), tag("< b")},
		},
		{
			name:     "angle bracket inside tag",
			input:    "a<b<c>d",
			expected: []Token{text("a"), tag("<b<c>"), text("d")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q) =\n  %#v\nwant\n  %#v", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSplit_Lossless - Join(Split(s)) == s
// ---------------------------------------------------------------------------

func TestSplit_Lossless(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"<",
		"<<",
		">",
		"a>b<c",
		"<!--",
		"<!-",
		"<![CDATA[",
		"<![CDATA",
		"<p>one</p>\n\n<p>two</p>",
		"text <a href=\"x\ny\">link</a> <!-- c --> <![CDATA[d]]> tail",
		"<!--" + strings.Repeat("-", 10000),
		"<![CDATA[" + strings.Repeat("]", 10000),
		strings.Repeat("<x>", 1000),
	}

	for _, in := range inputs {
		if got := Join(Split(in)); got != in {
			t.Errorf("Join(Split(%.40q)) = %.40q, want input back", in, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestSplit_Alternates - Text and markup alternate
// ---------------------------------------------------------------------------

func TestSplit_Alternates(t *testing.T) {
	t.Parallel()

	tokens := Split("<a><b>c<!--d--><![CDATA[e]]>f<g")
	for i, tok := range tokens {
		wantMarkup := i%2 == 1
		if tok.IsMarkup() != wantMarkup {
			t.Errorf("token %d (%q) IsMarkup = %v, want %v", i, tok.Value, tok.IsMarkup(), wantMarkup)
		}
	}
}

// ---------------------------------------------------------------------------
// TestKind_String - Kind names
// ---------------------------------------------------------------------------

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{Text, "text"},
		{Tag, "tag"},
		{Comment, "comment"},
		{CData, "cdata"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestMarkup(t *testing.T) {
	t.Parallel()

	got := Markup("a<b>c<!--d-->e")
	want := []Token{tag("<b>"), comment("<!--d-->")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Markup() = %#v, want %#v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestReplaceInMarkup - Substitution restricted to markup
// ---------------------------------------------------------------------------

func TestReplaceInMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		oldnew   []string
		expected string
	}{
		{
			name:     "no tags",
			input:    "nothing will be replaced here",
			oldnew:   []string{"\n", "REPLACED"},
			expected: "nothing will be replaced here",
		},
		{
			name:     "newlines only inside tags",
			input:    "xx\n<h1\n>wf<h2>go\nhw</h1\n>efj",
			oldnew:   []string{"\n", "REPLACED"},
			expected: "xx\n<h1REPLACED>wf<h2>go\nhw</h1REPLACED>efj",
		},
		{
			name:     "newlines inside comments and cdata",
			input:    "</h1><!-- comment<x>\n -->ws\no<![CDATA[wp\noefjpw]]>e\nfj",
			oldnew:   []string{"\n", "REPLACED"},
			expected: "</h1><!-- comment<x>REPLACED -->ws\no<![CDATA[wpREPLACEDoefjpw]]>e\nfj",
		},
		{
			name:     "multiple pairs",
			input:    "a <b x='1'\ty='2'> c",
			oldnew:   []string{"'", "\"", "\t", " "},
			expected: "a <b x=\"1\" y=\"2\"> c",
		},
		{
			name:     "no pairs",
			input:    "<a\n>",
			oldnew:   nil,
			expected: "<a\n>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReplaceInMarkup(tt.input, tt.oldnew...)
			if got != tt.expected {
				t.Errorf("ReplaceInMarkup(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
