package pipeline

import "strings"

// tagNewlines undoes ProtectTagNewlines. The bare comment form covers
// placeholders whose padding spaces were trimmed by a later pass.
var tagNewlines = strings.NewReplacer(
	TagNewlinePlaceholder, "\n",
	strings.TrimSpace(TagNewlinePlaceholder), "\n",
)

// RestoreTagNewlines turns newline placeholders back into newlines.
func RestoreTagNewlines(content string) string {
	return tagNewlines.Replace(content)
}
