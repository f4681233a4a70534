package pipeline

import (
	"fmt"
	"strings"
)

const (
	preOpen  = "<pre"
	preClose = "</pre>"
)

// preTagPlaceholder formats the stand-in for the n-th extracted <pre> block.
// It is an empty <pre> element so the block rules treat it as block markup.
func preTagPlaceholder(n int) string {
	return fmt.Sprintf("<pre wp-pre-tag-%d></pre>", n)
}

// PreTag pairs a placeholder with the <pre> region it replaced.
type PreTag struct {
	Placeholder string
	Original    string
}

// PreTags records the <pre> regions lifted out of one document, in order of
// appearance. The zero value is empty and Restore on it is a no-op.
type PreTags []PreTag

// ExtractPreTags replaces every <pre>...</pre> region with a placeholder so
// no formatting rule touches preformatted content. The content after the
// last </pre> is kept verbatim, as is any part holding a </pre> with no
// matching <pre>.
func ExtractPreTags(content string) (string, PreTags) {
	if !strings.Contains(content, preOpen) {
		return content, nil
	}

	parts := strings.Split(content, preClose)
	last := parts[len(parts)-1]
	parts = parts[:len(parts)-1]

	var (
		sb   strings.Builder
		tags PreTags
	)
	sb.Grow(len(content))

	for _, part := range parts {
		start := strings.Index(part, preOpen)
		if start < 0 {
			// Stray </pre>: leave the markup as written.
			sb.WriteString(part)
			sb.WriteString(preClose)
			continue
		}

		placeholder := preTagPlaceholder(len(tags))
		tags = append(tags, PreTag{
			Placeholder: placeholder,
			Original:    part[start:] + preClose,
		})
		sb.WriteString(part[:start])
		sb.WriteString(placeholder)
	}

	sb.WriteString(last)
	return sb.String(), tags
}

// Restore puts the original <pre> regions back, replacing the first
// occurrence of each placeholder.
func (p PreTags) Restore(content string) string {
	for _, tag := range p {
		content = strings.Replace(content, tag.Placeholder, tag.Original, 1)
	}
	return content
}

// Len returns the number of stored regions.
func (p PreTags) Len() int {
	return len(p)
}
