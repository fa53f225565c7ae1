// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

// Package richtext holds an explicit document model for the dashboard's
// rich-text fields: ordered blocks of styled spans with toolbar-shaped
// operations, deterministic HTML serialization, and snapshot-based
// undo/redo.
package richtext

import (
	"fmt"
	"strings"
)

// BlockKind discriminates the block types the toolbar can produce.
type BlockKind string

const (
	KindParagraph   BlockKind = "paragraph"
	KindHeading     BlockKind = "heading"
	KindBlockquote  BlockKind = "blockquote"
	KindBulletList  BlockKind = "bullet-list"
	KindOrderedList BlockKind = "ordered-list"
)

// Span is a run of text with uniform styling.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Block is one document block. Leaf kinds carry Spans; list kinds carry
// Items, each item being its own span sequence.
type Block struct {
	Kind  BlockKind
	Level int // heading level, 1-6; headings only
	Spans []Span
	Items [][]Span
}

// Document is an ordered block sequence.
type Document struct {
	Blocks []Block
}

// Range addresses a half-open text interval [Start, End) within one
// block, measured in runes of the block's plain text. Item selects the
// list item for list blocks and is ignored otherwise.
type Range struct {
	Block int
	Item  int
	Start int
	End   int
}

// Position addresses a single insertion point.
type Position struct {
	Block  int
	Item   int
	Offset int
}

func (b Block) isList() bool {
	return b.Kind == KindBulletList || b.Kind == KindOrderedList
}

// styledRune is the exploded per-rune form used while editing spans.
type styledRune struct {
	r      rune
	bold   bool
	italic bool
}

func explode(spans []Span) []styledRune {
	var runes []styledRune
	for _, s := range spans {
		for _, r := range s.Text {
			runes = append(runes, styledRune{r: r, bold: s.Bold, italic: s.Italic})
		}
	}
	return runes
}

// collapse merges consecutive same-styled runes back into canonical
// spans. Empty spans never survive.
func collapse(runes []styledRune) []Span {
	var spans []Span
	for _, sr := range runes {
		n := len(spans)
		if n > 0 && spans[n-1].Bold == sr.bold && spans[n-1].Italic == sr.italic {
			spans[n-1].Text += string(sr.r)
			continue
		}
		spans = append(spans, Span{Text: string(sr.r), Bold: sr.bold, Italic: sr.italic})
	}
	return spans
}

func (d *Document) targetSpans(block, item int) (*[]Span, error) {
	if block < 0 || block >= len(d.Blocks) {
		return nil, fmt.Errorf("block %d out of range", block)
	}
	b := &d.Blocks[block]
	if b.isList() {
		if item < 0 || item >= len(b.Items) {
			return nil, fmt.Errorf("item %d out of range in block %d", item, block)
		}
		return &b.Items[item], nil
	}
	return &b.Spans, nil
}

func clampRange(r Range, length int) (int, int) {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if end < start {
		end = start
	}
	return start, end
}

// ToggleBold bolds the range, or unbolds it when every rune in the
// range is already bold.
func (d *Document) ToggleBold(r Range) error {
	return d.toggle(r, func(sr *styledRune, on bool) { sr.bold = on }, func(sr styledRune) bool { return sr.bold })
}

// ToggleItalic italicizes the range, or removes italics when every rune
// in the range is already italic.
func (d *Document) ToggleItalic(r Range) error {
	return d.toggle(r, func(sr *styledRune, on bool) { sr.italic = on }, func(sr styledRune) bool { return sr.italic })
}

func (d *Document) toggle(r Range, set func(*styledRune, bool), isSet func(styledRune) bool) error {
	spans, err := d.targetSpans(r.Block, r.Item)
	if err != nil {
		return err
	}

	runes := explode(*spans)
	start, end := clampRange(r, len(runes))
	if start == end {
		return nil
	}

	all := true
	for i := start; i < end; i++ {
		if !isSet(runes[i]) {
			all = false
			break
		}
	}
	for i := start; i < end; i++ {
		set(&runes[i], !all)
	}

	*spans = collapse(runes)
	return nil
}

// SetBlockType changes a block's kind. Converting to a list wraps the
// block's spans in a single item; converting from a list flattens the
// items into one span sequence separated by spaces. Heading level
// defaults to 2.
func (d *Document) SetBlockType(block int, kind BlockKind) error {
	if block < 0 || block >= len(d.Blocks) {
		return fmt.Errorf("block %d out of range", block)
	}
	b := &d.Blocks[block]
	if b.Kind == kind {
		return nil
	}

	wasList := b.isList()
	b.Kind = kind
	if kind == KindHeading && b.Level == 0 {
		b.Level = 2
	}
	if kind != KindHeading {
		b.Level = 0
	}

	switch {
	case b.isList() && !wasList:
		if len(b.Spans) > 0 {
			b.Items = [][]Span{b.Spans}
		}
		b.Spans = nil
	case !b.isList() && wasList:
		var flat []Span
		for i, item := range b.Items {
			if i > 0 && len(flat) > 0 {
				flat = append(flat, Span{Text: " "})
			}
			flat = append(flat, item...)
		}
		b.Spans = collapse(explode(flat))
		b.Items = nil
	}
	return nil
}

// InsertText inserts text at the position, inheriting the styling of
// the rune immediately before the insertion point.
func (d *Document) InsertText(pos Position, text string) error {
	if text == "" {
		return nil
	}
	spans, err := d.targetSpans(pos.Block, pos.Item)
	if err != nil {
		return err
	}

	runes := explode(*spans)
	offset := pos.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	var bold, italic bool
	if offset > 0 {
		bold, italic = runes[offset-1].bold, runes[offset-1].italic
	}

	var inserted []styledRune
	for _, r := range text {
		inserted = append(inserted, styledRune{r: r, bold: bold, italic: italic})
	}

	runes = append(runes[:offset:offset], append(inserted, runes[offset:]...)...)
	*spans = collapse(runes)
	return nil
}

// AppendBlock adds a block at the end of the document.
func (d *Document) AppendBlock(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// PlainText strips all markup: span texts joined in order, blocks and
// list items separated by newlines.
func (d Document) PlainText() string {
	var sb strings.Builder
	for i, b := range d.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		if b.isList() {
			for j, item := range b.Items {
				if j > 0 {
					sb.WriteString("\n")
				}
				for _, s := range item {
					sb.WriteString(s.Text)
				}
			}
			continue
		}
		for _, s := range b.Spans {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// clone returns a deep copy used for undo/redo snapshots.
func (d Document) clone() Document {
	out := Document{Blocks: make([]Block, len(d.Blocks))}
	for i, b := range d.Blocks {
		nb := Block{Kind: b.Kind, Level: b.Level}
		if b.Spans != nil {
			nb.Spans = append([]Span(nil), b.Spans...)
		}
		if b.Items != nil {
			nb.Items = make([][]Span, len(b.Items))
			for j, item := range b.Items {
				nb.Items[j] = append([]Span(nil), item...)
			}
		}
		out.Blocks[i] = nb
	}
	return out
}
