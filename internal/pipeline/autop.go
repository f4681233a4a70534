package pipeline

import "strings"

// Autop converts double line breaks into paragraphs and, when LineBreaks is
// set, remaining single newlines into <br />. The value is immutable and safe
// for concurrent use.
type Autop struct {
	LineBreaks bool
}

// Run formats content. Input that is empty after trimming whitespace yields
// the empty string.
func (a Autop) Run(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	// Lift <pre> blocks first so no rule below ever sees their content.
	content, pre := ExtractPreTags(content)

	content = Normalize(content)
	// Guarantee the last paragraph ends in a newline.
	content += "\n"

	content = WrapParagraphs(content)
	content = CleanupParagraphs(content)

	if a.LineBreaks {
		content = InsertLineBreaks(content)
		content = CleanupLineBreaks(content)
	}

	content = ReplaceMoreTag(content)

	content = pre.Restore(content)
	return RestoreTagNewlines(content)
}
