package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-autop/internal/htmlsplit"
)

// TagNewlinePlaceholder stands in for a newline found inside markup so the
// newline-sensitive passes never see it. It is itself a comment, so it stays
// inert if it ever leaks into the output.
const TagNewlinePlaceholder = " <!-- wpnl --> "

// Precompiled regex patterns for the structural passes.
var (
	// Two consecutive <br> in any spelling
	breakPair = regexp.MustCompile(`<br\s*/?>\s*<br\s*/?>`)

	// Block-level opening tag
	blockOpening = regexp.MustCompile(`(<` + blockNames + `[^>]*>)`)

	// Block-level closing tag
	blockClosing = regexp.MustCompile(`(</` + blockNames + `>)`)

	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// <option> whitespace
	spaceBeforeOption = regexp.MustCompile(`\s*<option`)
	spaceAfterOption  = regexp.MustCompile(`</option>\s*`)

	// <object>, <param>, <embed> whitespace
	spaceInsideObject  = regexp.MustCompile(`(<object[^>]*>)\s*`)
	spaceBeforeObject  = regexp.MustCompile(`\s*</object>`)
	spaceAroundObjParm = regexp.MustCompile(`\s*(</?(?:param|embed)[^>]*>)\s*`)

	// <audio>, <video>, <source>, <track> whitespace, HTML or [shortcode] form
	spaceAfterMediaOpen   = regexp.MustCompile(`([<\[](?:audio|video)[^>\]]*[>\]])\s*`)
	spaceBeforeMediaClose = regexp.MustCompile(`\s*([<\[]/(?:audio|video)[>\]])`)
	spaceAroundMediaChild = regexp.MustCompile(`\s*(<(?:source|track)[^>]*>)\s*`)

	// Runs of blank lines
	multipleBlankLines = regexp.MustCompile(`\n\n+`)
)

// Normalize standardizes line breaks and block spacing.
// Order matters: block padding must run before blank lines are compressed,
// and tag newlines must be hidden before any rule that reacts to bare
// newlines.
func Normalize(content string) string {
	content = CollapseBreakPairs(content)
	content = PadBlockOpeningTags(content)
	content = PadBlockClosingTags(content)
	content = NormalizeLineEndings(content)
	content = ProtectTagNewlines(content)
	content = CollapseOptionWhitespace(content)
	content = CollapseObjectWhitespace(content)
	content = CollapseMediaWhitespace(content)
	content = CompressBlankLines(content)
	return content
}

// CollapseBreakPairs turns two consecutive <br> tags into a blank line.
func CollapseBreakPairs(content string) string {
	return breakPair.ReplaceAllString(content, "\n\n")
}

// PadBlockOpeningTags puts a newline before every block-level opening tag.
func PadBlockOpeningTags(content string) string {
	return blockOpening.ReplaceAllString(content, "\n${1}")
}

// PadBlockClosingTags puts a blank line after every block-level closing tag.
func PadBlockClosingTags(content string) string {
	return blockClosing.ReplaceAllString(content, "${1}\n\n")
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ProtectTagNewlines hides newlines inside tags, comments and CDATA behind
// TagNewlinePlaceholder. RestoreTagNewlines reverses it.
func ProtectTagNewlines(content string) string {
	return htmlsplit.ReplaceInMarkup(content, "\n", TagNewlinePlaceholder)
}

// CollapseOptionWhitespace removes whitespace around <option> elements.
func CollapseOptionWhitespace(content string) string {
	if !strings.Contains(content, "<option") {
		return content
	}
	content = spaceBeforeOption.ReplaceAllString(content, "<option")
	return spaceAfterOption.ReplaceAllString(content, "</option>")
}

// CollapseObjectWhitespace removes line breaks inside <object> elements,
// before and after <param> and <embed> elements.
func CollapseObjectWhitespace(content string) string {
	if !strings.Contains(content, "</object>") {
		return content
	}
	content = spaceInsideObject.ReplaceAllString(content, "${1}")
	content = spaceBeforeObject.ReplaceAllString(content, "</object>")
	return spaceAroundObjParm.ReplaceAllString(content, "${1}")
}

// CollapseMediaWhitespace removes line breaks inside <audio> and <video>
// elements, before and after <source> and <track> elements.
func CollapseMediaWhitespace(content string) string {
	if !strings.Contains(content, "<source") && !strings.Contains(content, "<track") {
		return content
	}
	content = spaceAfterMediaOpen.ReplaceAllString(content, "${1}")
	content = spaceBeforeMediaClose.ReplaceAllString(content, "${1}")
	return spaceAroundMediaChild.ReplaceAllString(content, "${1}")
}

// CompressBlankLines caps runs of newlines at two.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
