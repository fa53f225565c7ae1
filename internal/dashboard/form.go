// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pronimal/pronim-admin/internal/richtext"
)

// FormState is the form controller's lifecycle state.
type FormState int

const (
	StateClosed FormState = iota
	StateCreating
	StateEditing
	StateSubmitting
)

func (s FormState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

// Validator checks a draft before submission. The returned error's text
// is shown to the user as-is.
type Validator[T any] func(draft T) error

// Required rejects a draft whose field is empty after trimming.
func Required[T any](name string, field func(T) string) Validator[T] {
	return func(draft T) error {
		if strings.TrimSpace(field(draft)) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// RequiredMarkup rejects a draft whose rich-text field is blank once
// markup is stripped. A field full of empty paragraphs counts as blank.
func RequiredMarkup[T any](name string, field func(T) string) Validator[T] {
	return func(draft T) error {
		text := field(draft)
		if doc, err := richtext.Parse(text); err == nil {
			text = doc.PlainText()
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// ErrFormClosed is returned when Submit is called with no open draft.
var ErrFormClosed = errors.New("form is not open")

// FormController manages one create/edit session: it owns the draft,
// runs validators on submit, drives the adapter, and reloads the
// collection before closing.
type FormController[T Entity[T]] struct {
	adapter    Adapter[T]
	collection *Collection[T]
	validators []Validator[T]

	state   FormState
	draft   T
	editing string // ID of the record being edited, empty when creating
	errMsg  string
}

// NewFormController creates a closed form controller.
func NewFormController[T Entity[T]](adapter Adapter[T], collection *Collection[T], validators ...Validator[T]) *FormController[T] {
	return &FormController[T]{
		adapter:    adapter,
		collection: collection,
		validators: validators,
	}
}

// State returns the current lifecycle state.
func (f *FormController[T]) State() FormState {
	return f.state
}

// Err returns the last surfaced error message, cleared on open/cancel.
func (f *FormController[T]) Err() string {
	return f.errMsg
}

// Open starts a create session with an empty draft.
func (f *FormController[T]) Open() {
	var empty T
	f.state = StateCreating
	f.draft = empty
	f.editing = ""
	f.errMsg = ""
}

// OpenEdit starts an edit session with a draft copied from rec.
func (f *FormController[T]) OpenEdit(rec T) {
	f.state = StateEditing
	f.draft = rec.Clone()
	f.editing = rec.RecordID()
	f.errMsg = ""
}

// Draft returns the draft under edit.
func (f *FormController[T]) Draft() T {
	return f.draft
}

// SetDraft replaces the draft. Only meaningful while the form is open.
func (f *FormController[T]) SetDraft(draft T) {
	if f.state == StateCreating || f.state == StateEditing {
		f.draft = draft
	}
}

// UpdateDraft applies a field mutation to the draft.
func (f *FormController[T]) UpdateDraft(mutate func(draft T) T) {
	if f.state == StateCreating || f.state == StateEditing {
		f.draft = mutate(f.draft)
	}
}

// Submit validates the draft, creates or updates through the adapter,
// reloads the collection, and closes the form. Validation or adapter
// failure keeps the form open with the error message surfaced.
func (f *FormController[T]) Submit(ctx context.Context) error {
	if f.state != StateCreating && f.state != StateEditing {
		return ErrFormClosed
	}

	for _, validate := range f.validators {
		if err := validate(f.draft); err != nil {
			f.errMsg = err.Error()
			return err
		}
	}

	prev := f.state
	f.state = StateSubmitting

	var err error
	if f.editing == "" {
		_, err = f.adapter.Create(ctx, f.draft)
	} else {
		_, err = f.adapter.Update(ctx, f.draft)
	}
	if err != nil {
		f.state = prev
		f.errMsg = err.Error()
		return err
	}

	if err := f.collection.Reload(ctx); err != nil {
		f.state = prev
		f.errMsg = err.Error()
		return err
	}

	f.close()
	return nil
}

// Cancel discards the draft and closes the form from any open state.
func (f *FormController[T]) Cancel() {
	f.close()
}

func (f *FormController[T]) close() {
	var empty T
	f.state = StateClosed
	f.draft = empty
	f.editing = ""
	f.errMsg = ""
}
