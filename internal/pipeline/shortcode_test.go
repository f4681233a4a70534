package pipeline

import "testing"

func TestReplaceMoreTag(t *testing.T) {
	t.Parallel()

	runPassCases(t, ReplaceMoreTag, []passCase{
		{"with teaser text", "abc<!--more ignored -->def", `abc<div class="clear-both"></div>def`},
		{"bare marker", "<!--more-->", `<div class="clear-both"></div>`},
		{"two markers", "a<!--more-->b<!--more x-->c", `a<div class="clear-both"></div>b<div class="clear-both"></div>c`},
		{"other comment kept", "a<!-- more -->b", "a<!-- more -->b"},
		{"dollar sign in teaser", "<!--more $1 -->", `<div class="clear-both"></div>`},
	})
}

func TestRestoreTagNewlines(t *testing.T) {
	t.Parallel()

	runPassCases(t, RestoreTagNewlines, []passCase{
		{"padded placeholder", "<tag <!-- wpnl --> >", "<tag\n>"},
		{"bare placeholder", "<tag<!-- wpnl -->>", "<tag\n>"},
		{"round trip", ProtectTagNewlines("<a\nb=\"c\nd\">x\ny</a>"), "<a\nb=\"c\nd\">x\ny</a>"},
	})
}
