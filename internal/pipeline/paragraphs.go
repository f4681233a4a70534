package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for paragraph wrapping and cleanup.
var (
	// Paragraph boundary: a newline, optional whitespace, a newline
	paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

	// <p> holding nothing but whitespace
	emptyParagraph = regexp.MustCompile(`<p>\s*</p>`)

	// Paragraph text running straight into a container's closing tag
	unclosedInContainer = regexp.MustCompile(`<p>([^<]+)</(div|address|form)>`)

	// A lone block tag wrapped in <p>...</p>
	wrappedBlockTag = regexp.MustCompile(`<p>\s*(` + anyBlockTag + `)\s*</p>`)

	// <li> content wrapped in <p>
	wrappedListItem = regexp.MustCompile(`<p>(<li.+?)</p>`)

	// <blockquote> opened inside <p>
	wrappedBlockquote = regexp.MustCompile(`(?i)<p><blockquote([^>]*)>`)

	// <p> directly before a block tag
	openBeforeBlockTag = regexp.MustCompile(`<p>\s*(` + anyBlockTag + `)`)

	// </p> directly after a block tag
	closeAfterBlockTag = regexp.MustCompile(`(` + anyBlockTag + `)\s*</p>`)
)

// WrapParagraphs wraps each run of text separated by blank lines in
// <p>...</p>\n. Trailing empty runs are dropped; leading empty runs produce
// empty paragraphs that RemoveEmptyParagraphs discards.
func WrapParagraphs(content string) string {
	segments := paragraphBoundary.Split(content, -1)
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	var sb strings.Builder
	sb.Grow(len(content) + len(segments)*len("<p></p>\n"))

	for _, seg := range segments {
		sb.WriteString("<p>")
		sb.WriteString(strings.Trim(seg, "\n"))
		sb.WriteString("</p>\n")
	}
	return sb.String()
}

// CleanupParagraphs removes the paragraph wrappers that WrapParagraphs put
// around block markup. Order matters: each rule expects the previous rules
// to have run.
func CleanupParagraphs(content string) string {
	content = RemoveEmptyParagraphs(content)
	content = CloseParagraphsInContainers(content)
	content = UnwrapBlockTags(content)
	content = UnwrapListItems(content)
	content = UnwrapBlockquotes(content)
	content = DropOpenBeforeBlockTags(content)
	content = DropCloseAfterBlockTags(content)
	return content
}

// RemoveEmptyParagraphs deletes paragraphs that contain only whitespace.
func RemoveEmptyParagraphs(content string) string {
	return emptyParagraph.ReplaceAllString(content, "")
}

// CloseParagraphsInContainers adds the missing </p> when paragraph text ends
// at a </div>, </address> or </form>.
func CloseParagraphsInContainers(content string) string {
	return unclosedInContainer.ReplaceAllString(content, "<p>${1}</p></${2}>")
}

// UnwrapBlockTags removes a <p> wrapper around a single block tag.
func UnwrapBlockTags(content string) string {
	return wrappedBlockTag.ReplaceAllString(content, "${1}")
}

// UnwrapListItems removes a <p> wrapper around <li> content.
func UnwrapListItems(content string) string {
	return wrappedListItem.ReplaceAllString(content, "${1}")
}

// UnwrapBlockquotes moves a <p> opened before a <blockquote> inside it.
func UnwrapBlockquotes(content string) string {
	content = wrappedBlockquote.ReplaceAllString(content, "<blockquote${1}><p>")
	return strings.ReplaceAll(content, "</blockquote></p>", "</p></blockquote>")
}

// DropOpenBeforeBlockTags removes a <p> that directly precedes a block tag.
func DropOpenBeforeBlockTags(content string) string {
	return openBeforeBlockTag.ReplaceAllString(content, "${1}")
}

// DropCloseAfterBlockTags removes a </p> that directly follows a block tag.
func DropCloseAfterBlockTags(content string) string {
	return closeAfterBlockTag.ReplaceAllString(content, "${1}")
}
