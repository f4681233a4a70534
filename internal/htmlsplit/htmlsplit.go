// Package htmlsplit splits a document into alternating text and markup runs.
//
// It is not an HTML parser. A run is markup when it is a tag, an HTML comment
// or a CDATA section; everything else is text. Joining the runs back together
// always reproduces the input byte for byte, including unterminated markup at
// the end of the document.
package htmlsplit

import "strings"

// Kind classifies a token.
type Kind int

const (
	Text    Kind = iota // plain text outside any markup
	Tag                 // <...> up to the first '>'
	Comment             // <!-- ... -->
	CData               // <![CDATA[ ... ]]>
)

// Markup openers and terminators.
const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
	tagClose     = ">"
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Tag:
		return "tag"
	case Comment:
		return "comment"
	case CData:
		return "cdata"
	default:
		return "unknown"
	}
}

// Token is a contiguous run of the input.
type Token struct {
	Kind  Kind
	Value string
}

// IsMarkup reports whether the token is a tag, comment or CDATA section.
func (t Token) IsMarkup() bool {
	return t.Kind != Text
}

// Split partitions s into tokens. Every markup token is preceded by a text
// token, which is empty when two markup runs are adjacent. A trailing text
// token is emitted only when non-empty.
func Split(s string) []Token {
	var tokens []Token
	pos := 0

	for {
		i := strings.IndexByte(s[pos:], '<')
		if i < 0 {
			break
		}
		start := pos + i
		tokens = append(tokens, Token{Kind: Text, Value: s[pos:start]})

		kind, end := scanMarkup(s, start)
		tokens = append(tokens, Token{Kind: kind, Value: s[start:end]})
		pos = end
	}

	if pos < len(s) {
		tokens = append(tokens, Token{Kind: Text, Value: s[pos:]})
	}
	return tokens
}

// scanMarkup classifies the markup starting at s[start] ('<') and returns its
// kind and end offset. Comment and CDATA detection wins over generic tags so
// a '>' inside their bodies does not end them.
func scanMarkup(s string, start int) (Kind, int) {
	rest := s[start:]

	switch {
	case strings.HasPrefix(rest, commentOpen):
		// Search from the dashes so "<!-->" closes itself.
		return Comment, start + 2 + terminatedAt(rest[2:], commentClose)
	case strings.HasPrefix(rest, cdataOpen):
		return CData, start + len(cdataOpen) + terminatedAt(rest[len(cdataOpen):], cdataClose)
	default:
		return Tag, start + 1 + terminatedAt(rest[1:], tagClose)
	}
}

// terminatedAt returns the length of s up to and including the first term,
// or len(s) when term never occurs.
func terminatedAt(s, term string) int {
	if i := strings.Index(s, term); i >= 0 {
		return i + len(term)
	}
	return len(s)
}

// Join concatenates token values in order.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Value)
	}
	return sb.String()
}

// Markup returns only the markup tokens of s, in order.
func Markup(s string) []Token {
	var out []Token
	for _, t := range Split(s) {
		if t.IsMarkup() {
			out = append(out, t)
		}
	}
	return out
}

// ReplaceInMarkup applies old/new replacement pairs (as for
// strings.NewReplacer) inside markup tokens only. Text runs are never touched.
// s is returned unchanged, without rebuilding, when nothing was replaced.
func ReplaceInMarkup(s string, oldnew ...string) string {
	if len(oldnew) == 0 || !strings.Contains(s, "<") {
		return s
	}

	r := strings.NewReplacer(oldnew...)
	tokens := Split(s)
	changed := false

	for i, t := range tokens {
		if !t.IsMarkup() {
			continue
		}
		if v := r.Replace(t.Value); v != t.Value {
			tokens[i].Value = v
			changed = true
		}
	}

	if !changed {
		return s
	}
	return Join(tokens)
}
