package pipeline

import (
	"regexp"
	"strings"
)

// BlockTags is the closed set of element names treated as block level.
// Names are matched as tag-name prefixes, so "p" also covers "<param" and
// "<pre"; the rules built on this set were written with that in mind.
var BlockTags = [...]string{
	"table", "thead", "tfoot", "caption", "col", "colgroup", "tbody", "tr", "td", "th",
	"div", "dl", "dd", "dt", "ul", "ol", "li", "pre", "form", "map", "area",
	"blockquote", "address", "math", "style", "p",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"hr", "fieldset", "legend", "section", "article", "aside", "hgroup",
	"header", "footer", "nav", "figure", "figcaption", "details", "menu", "summary",
}

// BreakTrimTags are the block elements before which a trailing <br /> is
// redundant.
var BreakTrimTags = [...]string{"p", "li", "div", "dl", "dd", "dt", "th", "pre", "td", "ul", "ol"}

// Regex fragments built from the tag sets.
var (
	blockNames     = alternation(BlockTags[:])
	breakTrimNames = alternation(BreakTrimTags[:])

	// anyBlockTag matches one opening or closing block tag.
	anyBlockTag = `</?` + blockNames + `[^>]*>`
)

// alternation joins names into a non-capturing regex group.
func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// IsBlockTag reports whether name is exactly a member of BlockTags.
func IsBlockTag(name string) bool {
	for _, n := range BlockTags {
		if n == name {
			return true
		}
	}
	return false
}
