// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import "context"

// Column describes one table column: a header and a cell extractor.
type Column[T any] struct {
	Title string
	Value func(rec T) string
}

// AccordionItem is one rendered entry of a question/answer list.
type AccordionItem struct {
	ID       string
	Question string
	Answer   string
}

// ConfirmFunc resolves a delete confirmation asynchronously. Returning
// false aborts the delete with no state change.
type ConfirmFunc func(ctx context.Context) (bool, error)

// ReadToggleFunc marks one record as read through the adapter's
// single-field patch path.
type ReadToggleFunc func(ctx context.Context, id string) error

// ListView renders a collection as a table or an accordion and wires
// row-level delete and read-toggle actions.
type ListView[T Entity[T]] struct {
	adapter    Adapter[T]
	collection *Collection[T]
	columns    []Column[T]

	// accordion extracts a question/answer pair; set for FAQ-like
	// entities, nil for table entities.
	accordion func(rec T) (question, answer string)

	// isRead and markRead implement the read/unread toggle for
	// message-like entities.
	isRead   func(rec T) bool
	markRead ReadToggleFunc
}

// NewListView creates a table-rendering list view.
func NewListView[T Entity[T]](adapter Adapter[T], collection *Collection[T], columns []Column[T]) *ListView[T] {
	return &ListView[T]{
		adapter:    adapter,
		collection: collection,
		columns:    columns,
	}
}

// WithAccordion switches rendering to accordion mode for
// question/answer entities.
func (v *ListView[T]) WithAccordion(extract func(rec T) (question, answer string)) *ListView[T] {
	v.accordion = extract
	return v
}

// WithReadToggle wires the read/unread toggle invoked on first view.
func (v *ListView[T]) WithReadToggle(isRead func(rec T) bool, markRead ReadToggleFunc) *ListView[T] {
	v.isRead = isRead
	v.markRead = markRead
	return v
}

// Headers returns the table column titles.
func (v *ListView[T]) Headers() []string {
	out := make([]string, len(v.columns))
	for i, col := range v.columns {
		out[i] = col.Title
	}
	return out
}

// Rows renders the current collection as table cells.
func (v *ListView[T]) Rows() [][]string {
	records := v.collection.Current()
	rows := make([][]string, len(records))
	for i, rec := range records {
		cells := make([]string, len(v.columns))
		for j, col := range v.columns {
			cells[j] = col.Value(rec)
		}
		rows[i] = cells
	}
	return rows
}

// Accordion renders the current collection as question/answer entries.
// Returns nil when the view is not in accordion mode.
func (v *ListView[T]) Accordion() []AccordionItem {
	if v.accordion == nil {
		return nil
	}
	records := v.collection.Current()
	items := make([]AccordionItem, len(records))
	for i, rec := range records {
		q, a := v.accordion(rec)
		items[i] = AccordionItem{ID: rec.RecordID(), Question: q, Answer: a}
	}
	return items
}

// Delete removes a record after confirmation, then reloads. Declining
// the confirmation aborts with no state change.
func (v *ListView[T]) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	ok, err := confirm(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := v.adapter.Remove(ctx, id); err != nil {
		return err
	}
	return v.collection.Reload(ctx)
}

// View opens a record for viewing. Unread message-like records are
// marked read through the single-field toggle on first view; viewing an
// already-read record has no side effect.
func (v *ListView[T]) View(ctx context.Context, id string) (T, error) {
	rec, found := v.collection.Find(id)
	if !found {
		var zero T
		return zero, ErrNotFound
	}

	if v.markRead != nil && v.isRead != nil && !v.isRead(rec) {
		if err := v.markRead(ctx, id); err != nil {
			return rec, err
		}
		if err := v.collection.Reload(ctx); err != nil {
			return rec, err
		}
		if fresh, ok := v.collection.Find(id); ok {
			rec = fresh
		}
	}
	return rec, nil
}
