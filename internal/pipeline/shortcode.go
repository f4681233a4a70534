package pipeline

import (
	"regexp"
	"strings"
)

// ClearBoth is the markup that stands in for a <!--more--> marker.
const ClearBoth = `<div class="clear-both"></div>`

// <!--more--> marker with optional teaser text
var moreTag = regexp.MustCompile(`<!--more(.*?)-->`)

// ReplaceMoreTag turns every <!--more ...--> comment into ClearBoth.
func ReplaceMoreTag(content string) string {
	if !strings.Contains(content, "<!--more") {
		return content
	}
	return moreTag.ReplaceAllLiteralString(content, ClearBoth)
}
