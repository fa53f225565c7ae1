// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package richtext

import (
	"fmt"
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// HTML serializes the document deterministically: blocks in order with
// no separators, bold as <strong> outside <em>, text escaped. Parsing
// the output reproduces it byte-identically.
func (d Document) HTML() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		writeBlock(&sb, b)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, b Block) {
	switch b.Kind {
	case KindHeading:
		level := b.Level
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(sb, "<h%d>", level)
		writeSpans(sb, b.Spans)
		fmt.Fprintf(sb, "</h%d>", level)
	case KindBlockquote:
		sb.WriteString("<blockquote>")
		writeSpans(sb, b.Spans)
		sb.WriteString("</blockquote>")
	case KindBulletList, KindOrderedList:
		tag := "ul"
		if b.Kind == KindOrderedList {
			tag = "ol"
		}
		sb.WriteString("<" + tag + ">")
		for _, item := range b.Items {
			sb.WriteString("<li>")
			writeSpans(sb, item)
			sb.WriteString("</li>")
		}
		sb.WriteString("</" + tag + ">")
	default:
		sb.WriteString("<p>")
		writeSpans(sb, b.Spans)
		sb.WriteString("</p>")
	}
}

func writeSpans(sb *strings.Builder, spans []Span) {
	for _, s := range spans {
		text := html.EscapeString(s.Text)
		switch {
		case s.Bold && s.Italic:
			sb.WriteString("<strong><em>" + text + "</em></strong>")
		case s.Bold:
			sb.WriteString("<strong>" + text + "</strong>")
		case s.Italic:
			sb.WriteString("<em>" + text + "</em>")
		default:
			sb.WriteString(text)
		}
	}
}

// Parse converts HTML into the document model. Recognized blocks map
// directly; loose inline content between blocks is folded into a
// paragraph; unknown inline tags contribute their text with the
// surrounding styling.
func Parse(input string) (Document, error) {
	root, err := xhtml.Parse(strings.NewReader(input))
	if err != nil {
		return Document{}, fmt.Errorf("parsing html: %w", err)
	}

	body := findBody(root)
	if body == nil {
		return Document{}, nil
	}

	var doc Document
	var loose []Span
	flush := func() {
		if spans := collapse(explode(loose)); len(spans) > 0 {
			doc.Blocks = append(doc.Blocks, Block{Kind: KindParagraph, Spans: spans})
		}
		loose = nil
	}

	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xhtml.TextNode {
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			loose = append(loose, Span{Text: n.Data})
			continue
		}
		if n.Type != xhtml.ElementNode {
			continue
		}

		switch n.Data {
		case "p", "div":
			flush()
			doc.Blocks = append(doc.Blocks, Block{Kind: KindParagraph, Spans: parseSpans(n, false, false)})
		case "h1", "h2", "h3", "h4", "h5", "h6":
			flush()
			level := int(n.Data[1] - '0')
			doc.Blocks = append(doc.Blocks, Block{Kind: KindHeading, Level: level, Spans: parseSpans(n, false, false)})
		case "blockquote":
			flush()
			doc.Blocks = append(doc.Blocks, Block{Kind: KindBlockquote, Spans: parseSpans(n, false, false)})
		case "ul", "ol":
			flush()
			kind := KindBulletList
			if n.Data == "ol" {
				kind = KindOrderedList
			}
			block := Block{Kind: kind}
			for li := n.FirstChild; li != nil; li = li.NextSibling {
				if li.Type == xhtml.ElementNode && li.Data == "li" {
					block.Items = append(block.Items, parseSpans(li, false, false))
				}
			}
			doc.Blocks = append(doc.Blocks, block)
		default:
			loose = append(loose, inlineSpans(n, false, false)...)
		}
	}
	flush()

	return doc, nil
}

// parseSpans collects the styled text content of one leaf block.
func parseSpans(n *xhtml.Node, bold, italic bool) []Span {
	var spans []Span
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		spans = append(spans, inlineSpans(c, bold, italic)...)
	}
	return collapse(explode(spans))
}

func inlineSpans(n *xhtml.Node, bold, italic bool) []Span {
	switch n.Type {
	case xhtml.TextNode:
		if n.Data == "" {
			return nil
		}
		return []Span{{Text: n.Data, Bold: bold, Italic: italic}}
	case xhtml.ElementNode:
		switch n.Data {
		case "b", "strong":
			bold = true
		case "i", "em":
			italic = true
		case "br":
			return []Span{{Text: "\n", Bold: bold, Italic: italic}}
		}
		var spans []Span
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			spans = append(spans, inlineSpans(c, bold, italic)...)
		}
		return spans
	default:
		return nil
	}
}

func findBody(n *xhtml.Node) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}
