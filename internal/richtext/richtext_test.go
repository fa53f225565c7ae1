// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package richtext

import (
	"testing"
)

func doc(blocks ...Block) Document {
	return Document{Blocks: blocks}
}

func para(spans ...Span) Block {
	return Block{Kind: KindParagraph, Spans: spans}
}

func TestHTML_Deterministic(t *testing.T) {
	d := doc(
		Block{Kind: KindHeading, Level: 2, Spans: []Span{{Text: "Title"}}},
		para(Span{Text: "Plain "}, Span{Text: "bold", Bold: true}, Span{Text: " and "}, Span{Text: "both", Bold: true, Italic: true}),
		Block{Kind: KindBulletList, Items: [][]Span{
			{{Text: "one"}},
			{{Text: "two", Italic: true}},
		}},
		Block{Kind: KindBlockquote, Spans: []Span{{Text: "quoted"}}},
	)

	want := "<h2>Title</h2>" +
		"<p>Plain <strong>bold</strong> and <strong><em>both</em></strong></p>" +
		"<ul><li>one</li><li><em>two</em></li></ul>" +
		"<blockquote>quoted</blockquote>"
	if got := d.HTML(); got != want {
		t.Fatalf("HTML() = %q, want %q", got, want)
	}
	// Serializing twice yields the same bytes.
	if d.HTML() != d.HTML() {
		t.Fatal("HTML() is not deterministic")
	}
}

func TestParse_RoundTripByteIdentical(t *testing.T) {
	inputs := []Document{
		doc(para(Span{Text: "hello world"})),
		doc(para(Span{Text: "mixed "}, Span{Text: "bold", Bold: true}, Span{Text: " tail"})),
		doc(
			Block{Kind: KindHeading, Level: 3, Spans: []Span{{Text: "Heading", Italic: true}}},
			para(Span{Text: "body"}),
		),
		doc(Block{Kind: KindOrderedList, Items: [][]Span{
			{{Text: "first", Bold: true}},
			{{Text: "second"}},
		}}),
		doc(para(Span{Text: "escaped <chars> & \"quotes\""})),
		{},
	}

	for _, d := range inputs {
		html := d.HTML()
		parsed, err := Parse(html)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", html, err)
		}
		if got := parsed.HTML(); got != html {
			t.Errorf("round trip: got %q, want %q", got, html)
		}
	}
}

func TestParse_ForeignMarkup(t *testing.T) {
	parsed, err := Parse("<div>loose <b>bold</b> text</div><h1>big</h1>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(parsed.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(parsed.Blocks))
	}
	if parsed.Blocks[0].Kind != KindParagraph {
		t.Errorf("div parsed as %s, want paragraph", parsed.Blocks[0].Kind)
	}
	if parsed.Blocks[1].Kind != KindHeading || parsed.Blocks[1].Level != 1 {
		t.Errorf("h1 parsed as %s level %d", parsed.Blocks[1].Kind, parsed.Blocks[1].Level)
	}
	if got := parsed.Blocks[0].Spans[1].Text; got != "bold" || !parsed.Blocks[0].Spans[1].Bold {
		t.Errorf("bold span = %+v", parsed.Blocks[0].Spans[1])
	}
}

func TestToggleBold(t *testing.T) {
	d := doc(para(Span{Text: "hello world"}))

	if err := d.ToggleBold(Range{Block: 0, Start: 0, End: 5}); err != nil {
		t.Fatalf("ToggleBold error: %v", err)
	}
	if got, want := d.HTML(), "<p><strong>hello</strong> world</p>"; got != want {
		t.Fatalf("after bold: %q, want %q", got, want)
	}

	// Toggling the same fully-bold range removes the styling.
	if err := d.ToggleBold(Range{Block: 0, Start: 0, End: 5}); err != nil {
		t.Fatalf("ToggleBold error: %v", err)
	}
	if got, want := d.HTML(), "<p>hello world</p>"; got != want {
		t.Fatalf("after unbold: %q, want %q", got, want)
	}
}

func TestToggleBold_PartiallyBoldRangeBoldsAll(t *testing.T) {
	d := doc(para(Span{Text: "he", Bold: true}, Span{Text: "llo"}))

	if err := d.ToggleBold(Range{Block: 0, Start: 0, End: 5}); err != nil {
		t.Fatalf("ToggleBold error: %v", err)
	}
	if got, want := d.HTML(), "<p><strong>hello</strong></p>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToggleItalic_ListItem(t *testing.T) {
	d := doc(Block{Kind: KindBulletList, Items: [][]Span{
		{{Text: "alpha"}},
		{{Text: "beta"}},
	}})

	if err := d.ToggleItalic(Range{Block: 0, Item: 1, Start: 0, End: 4}); err != nil {
		t.Fatalf("ToggleItalic error: %v", err)
	}
	if got, want := d.HTML(), "<ul><li>alpha</li><li><em>beta</em></li></ul>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSetBlockType(t *testing.T) {
	d := doc(para(Span{Text: "text"}))

	if err := d.SetBlockType(0, KindHeading); err != nil {
		t.Fatalf("SetBlockType error: %v", err)
	}
	if got, want := d.HTML(), "<h2>text</h2>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if err := d.SetBlockType(0, KindBulletList); err != nil {
		t.Fatalf("SetBlockType error: %v", err)
	}
	if got, want := d.HTML(), "<ul><li>text</li></ul>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if err := d.SetBlockType(0, KindParagraph); err != nil {
		t.Fatalf("SetBlockType error: %v", err)
	}
	if got, want := d.HTML(), "<p>text</p>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if err := d.SetBlockType(5, KindParagraph); err == nil {
		t.Fatal("expected error for out-of-range block")
	}
}

func TestInsertText_InheritsStyle(t *testing.T) {
	d := doc(para(Span{Text: "ab", Bold: true}, Span{Text: "cd"}))

	if err := d.InsertText(Position{Block: 0, Offset: 2}, "X"); err != nil {
		t.Fatalf("InsertText error: %v", err)
	}
	if got, want := d.HTML(), "<p><strong>abX</strong>cd</p>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if err := d.InsertText(Position{Block: 0, Offset: 0}, "Y"); err != nil {
		t.Fatalf("InsertText error: %v", err)
	}
	if got, want := d.HTML(), "<p>Y<strong>abX</strong>cd</p>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPlainText(t *testing.T) {
	d := doc(
		Block{Kind: KindHeading, Level: 2, Spans: []Span{{Text: "Title"}}},
		para(Span{Text: "a ", Bold: true}, Span{Text: "b"}),
		Block{Kind: KindBulletList, Items: [][]Span{{{Text: "one"}}, {{Text: "two"}}}},
	)
	if got, want := d.PlainText(), "Title\na b\none\ntwo"; got != want {
		t.Fatalf("PlainText() = %q, want %q", got, want)
	}
}

func TestEditor_SetValueOnlyWhenDiffers(t *testing.T) {
	changes := 0
	e := NewEditor(func(string) { changes++ })

	if err := e.SetValue("<p>hello</p>"); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}
	if e.Value() != "<p>hello</p>" {
		t.Fatalf("Value() = %q", e.Value())
	}

	// Re-applying the identical value does not reset state.
	if err := e.ToggleBold(Range{Block: 0, Start: 0, End: 5}); err != nil {
		t.Fatalf("ToggleBold error: %v", err)
	}
	before := e.Value()
	if err := e.SetValue(before); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}
	if !e.Undo() {
		t.Fatal("undo history lost after no-op SetValue")
	}
	if e.Value() != "<p>hello</p>" {
		t.Fatalf("after undo: %q", e.Value())
	}
}

func TestEditor_EveryEditReportsHTML(t *testing.T) {
	var reported []string
	e := NewEditor(func(html string) { reported = append(reported, html) })

	e.AppendBlock(Block{Kind: KindParagraph, Spans: []Span{{Text: "hi"}}})
	if err := e.ToggleItalic(Range{Block: 0, Start: 0, End: 2}); err != nil {
		t.Fatalf("ToggleItalic error: %v", err)
	}

	if len(reported) != 2 {
		t.Fatalf("got %d change reports, want 2", len(reported))
	}
	if reported[1] != "<p><em>hi</em></p>" {
		t.Fatalf("last report = %q", reported[1])
	}
}

func TestEditor_UndoRedo(t *testing.T) {
	e := NewEditor(nil)
	e.AppendBlock(Block{Kind: KindParagraph, Spans: []Span{{Text: "one"}}})
	e.AppendBlock(Block{Kind: KindParagraph, Spans: []Span{{Text: "two"}}})

	if !e.Undo() {
		t.Fatal("Undo returned false")
	}
	if e.Value() != "<p>one</p>" {
		t.Fatalf("after undo: %q", e.Value())
	}

	if !e.Redo() {
		t.Fatal("Redo returned false")
	}
	if e.Value() != "<p>one</p><p>two</p>" {
		t.Fatalf("after redo: %q", e.Value())
	}

	// A fresh edit clears the redo stack.
	e.Undo()
	e.AppendBlock(Block{Kind: KindParagraph, Spans: []Span{{Text: "three"}}})
	if e.Redo() {
		t.Fatal("Redo succeeded after a new edit")
	}
}

func TestEditor_UndoEmpty(t *testing.T) {
	e := NewEditor(nil)
	if e.Undo() {
		t.Fatal("Undo on empty history returned true")
	}
	if e.Redo() {
		t.Fatal("Redo on empty history returned true")
	}
}
