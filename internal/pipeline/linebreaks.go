package pipeline

import (
	"regexp"
	"strings"
)

const (
	lineBreak            = "<br />"
	preservedNewline     = "<WPPreserveNewline />"
	lineBreakWithNewline = lineBreak + "\n"
)

// Precompiled regex patterns for line-break handling.
var (
	// <script> and <style> elements, across lines
	scriptOrStyle = regexp.MustCompile(`(?is)<script.*?</script>|<style.*?</style>`)

	// Non-canonical <br> spellings
	looseBreak = strings.NewReplacer("<br>", lineBreak, "<br/>", lineBreak)

	// Whitespace ending in a newline
	trailingNewline = regexp.MustCompile(`\s*\n`)

	// <br /> following a block tag
	breakAfterBlockTag = regexp.MustCompile(`(` + anyBlockTag + `)\s*<br />`)

	// <br /> preceding a tag from the break-trim set
	breakBeforeTrimTag = regexp.MustCompile(`<br />(\s*</?` + breakTrimNames + `[^>]*>)`)

	// Newline right before a </p> that ends its line
	newlineBeforeClose = regexp.MustCompile(`(?m)\n</p>$`)
)

// InsertLineBreaks turns every newline not already preceded by <br /> into
// <br />\n. Newlines inside <script> and <style> elements are left alone.
func InsertLineBreaks(content string) string {
	content = scriptOrStyle.ReplaceAllStringFunc(content, func(m string) string {
		return strings.ReplaceAll(m, "\n", preservedNewline)
	})
	content = looseBreak.Replace(content)
	content = breakUnbrokenNewlines(content)
	return strings.ReplaceAll(content, preservedNewline, "\n")
}

// breakUnbrokenNewlines replaces each \s*\n run whose start does not follow
// a <br /> with <br />\n. A run rejected at one offset is retried from the
// next byte, matching a negative lookbehind.
func breakUnbrokenNewlines(content string) string {
	if !strings.Contains(content, "\n") {
		return content
	}

	var sb strings.Builder
	sb.Grow(len(content) + strings.Count(content, "\n")*len(lineBreak))

	pos, search := 0, 0
	for search < len(content) {
		loc := trailingNewline.FindStringIndex(content[search:])
		if loc == nil {
			break
		}
		start, end := search+loc[0], search+loc[1]

		if strings.HasSuffix(content[:start], lineBreak) {
			search = start + 1
			continue
		}

		sb.WriteString(content[pos:start])
		sb.WriteString(lineBreakWithNewline)
		pos, search = end, end
	}

	sb.WriteString(content[pos:])
	return sb.String()
}

// CleanupLineBreaks removes the breaks InsertLineBreaks left next to block
// markup.
func CleanupLineBreaks(content string) string {
	content = breakAfterBlockTag.ReplaceAllString(content, "${1}")
	content = breakBeforeTrimTag.ReplaceAllString(content, "${1}")
	return newlineBeforeClose.ReplaceAllString(content, "</p>")
}
