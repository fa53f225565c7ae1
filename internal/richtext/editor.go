// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package richtext

// Editor wraps a document behind the value/onChange contract the form
// fields expect: every edit reports the new serialized HTML, and
// SetValue re-applies an external value only when it differs from the
// current serialization, so an in-progress edit is never clobbered.
type Editor struct {
	doc      Document
	value    string
	onChange func(html string)

	undo []Document
	redo []Document
}

// NewEditor creates an empty editor. onChange may be nil.
func NewEditor(onChange func(html string)) *Editor {
	return &Editor{onChange: onChange}
}

// Value returns the current serialized HTML.
func (e *Editor) Value() string {
	return e.value
}

// Document returns a copy of the current document.
func (e *Editor) Document() Document {
	return e.doc.clone()
}

// SetValue applies an external HTML value. A value equal to the current
// serialization is ignored. Applying a new value resets undo history.
func (e *Editor) SetValue(value string) error {
	if value == e.value {
		return nil
	}

	doc, err := Parse(value)
	if err != nil {
		return err
	}

	e.doc = doc
	e.value = doc.HTML()
	e.undo = nil
	e.redo = nil
	return nil
}

// ToggleBold applies bold over the range.
func (e *Editor) ToggleBold(r Range) error {
	return e.edit(func(d *Document) error { return d.ToggleBold(r) })
}

// ToggleItalic applies italics over the range.
func (e *Editor) ToggleItalic(r Range) error {
	return e.edit(func(d *Document) error { return d.ToggleItalic(r) })
}

// SetBlockType changes a block's kind.
func (e *Editor) SetBlockType(block int, kind BlockKind) error {
	return e.edit(func(d *Document) error { return d.SetBlockType(block, kind) })
}

// InsertText inserts text at the position.
func (e *Editor) InsertText(pos Position, text string) error {
	return e.edit(func(d *Document) error { return d.InsertText(pos, text) })
}

// AppendBlock adds a block at the end of the document.
func (e *Editor) AppendBlock(b Block) {
	_ = e.edit(func(d *Document) error {
		d.AppendBlock(b)
		return nil
	})
}

// Undo restores the previous snapshot. Returns false when there is
// nothing to undo.
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	e.redo = append(e.redo, e.doc.clone())
	e.doc = e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.emit()
	return true
}

// Redo re-applies the last undone snapshot.
func (e *Editor) Redo() bool {
	if len(e.redo) == 0 {
		return false
	}
	e.undo = append(e.undo, e.doc.clone())
	e.doc = e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.emit()
	return true
}

// PlainText strips all markup from the current document.
func (e *Editor) PlainText() string {
	return e.doc.PlainText()
}

func (e *Editor) edit(apply func(*Document) error) error {
	snapshot := e.doc.clone()
	if err := apply(&e.doc); err != nil {
		return err
	}
	e.undo = append(e.undo, snapshot)
	e.redo = nil
	e.emit()
	return nil
}

func (e *Editor) emit() {
	e.value = e.doc.HTML()
	if e.onChange != nil {
		e.onChange(e.value)
	}
}
