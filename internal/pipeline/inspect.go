package pipeline

import (
	"errors"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Stats summarizes the structure of formatted output.
type Stats struct {
	Paragraphs int // <p> elements after HTML parsing
	LineBreaks int // <br> elements
	PreBlocks  int // <pre> elements

	// Unbalanced lists tag names whose opening and closing tags do not pair
	// up in the raw markup, sorted. Void elements are never reported.
	Unbalanced []string
}

// Balanced reports whether every non-void tag in the markup was closed.
func (s Stats) Balanced() bool {
	return len(s.Unbalanced) == 0
}

// Inspect parses content as HTML and counts its block structure.
// It reads content only; the formatted string is never rewritten.
func Inspect(content string) (Stats, error) {
	var stats Stats

	doc, err := parseHTML(content)
	if err != nil {
		return stats, err
	}
	countElements(doc, &stats)

	stats.Unbalanced, err = unbalancedTags(content)
	if err != nil {
		return stats, err
	}
	return stats, nil
}

// parseHTML parses content, handling both full documents and fragments.
// Fragments are parsed in a <body> context and gathered under one root.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// countElements walks the tree and tallies the elements Stats tracks.
func countElements(n *html.Node, stats *Stats) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.P:
			stats.Paragraphs++
		case atom.Br:
			stats.LineBreaks++
		case atom.Pre:
			stats.PreBlocks++
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		countElements(c, stats)
	}
}

// voidElements never take a closing tag.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Param: true, atom.Source: true,
	atom.Track: true, atom.Wbr: true,
}

// unbalancedTags compares opening and closing tag counts per element name
// using the raw token stream, before any parser repair.
func unbalancedTags(content string) ([]string, error) {
	open := make(map[string]int)
	z := html.NewTokenizer(strings.NewReader(content))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return sortedNonZero(open), nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[atom.Lookup(name)] {
				open[string(name)]++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if !voidElements[atom.Lookup(name)] {
				open[string(name)]--
			}
		}
	}
}

// sortedNonZero returns the keys of counts whose value is not zero.
func sortedNonZero(counts map[string]int) []string {
	var names []string
	for name, n := range counts {
		if n != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
