// Package normalize flattens HTML documents to plain text so the bracket
// scanner can treat references uniformly. Anchor elements are linearized
// into "text (url)" spans, remaining tags are stripped with block-level
// elements becoming line breaks, and character entities are decoded by
// the parser.
package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags are elements whose boundaries become line breaks when the
// markup is stripped.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// Flatten converts an HTML document or fragment to plain text. The
// underlying parser is tolerant, so malformed markup degrades to
// best-effort stripping rather than failure; if the document cannot be
// read at all the input is returned unchanged.
func Flatten(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	doc.Find("script, style, noscript, template, iframe").Remove()

	// Linearize anchors before stripping so the classifier sees the href
	// as a round-bracket URL span.
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: anchorText(s)})
	})

	sel := doc.Find("body")
	if len(sel.Nodes) == 0 {
		sel = doc.Selection
	}
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n)
	}
	return collapseWhitespace(b.String())
}

// anchorText renders an anchor as "text (url)". When the anchor text is
// the link itself (or empty) it collapses to just "(url)".
func anchorText(s *goquery.Selection) string {
	href := strings.TrimSpace(s.AttrOr("href", ""))
	text := strings.TrimSpace(s.Text())
	if href == "" {
		return text
	}
	if text == "" || text == href {
		return "(" + href + ")"
	}
	return text + " (" + href + ")"
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteByte('\n')
			return
		}
		if blockTags[n.Data] {
			b.WriteByte('\n')
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				writeText(b, c)
			}
			b.WriteByte('\n')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

// collapseWhitespace squeezes runs of spaces and tabs to a single space,
// trims line edges, and reduces consecutive blank lines to one, without
// touching intentional single line breaks.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
