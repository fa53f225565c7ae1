// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmYes(context.Context) (bool, error) { return true, nil }
func confirmNo(context.Context) (bool, error)  { return false, nil }

func newSubscriberView(t *testing.T) (*ListView[Subscriber], *Collection[Subscriber], Adapter[Subscriber]) {
	t.Helper()

	store := newTestStore(t)
	adapter := NewBoltAdapter[Subscriber](store, "newsletters", nil)
	collection := NewCollection[Subscriber](adapter)
	view := NewListView(adapter, collection, []Column[Subscriber]{
		{Title: "Email", Value: func(s Subscriber) string { return s.Email }},
	})
	return view, collection, adapter
}

func TestListView_DeleteConfirmed(t *testing.T) {
	ctx := context.Background()
	view, collection, adapter := newSubscriberView(t)

	created, err := adapter.Create(ctx, Subscriber{Email: "gone@example.com", Subscribed: true})
	require.NoError(t, err)
	require.NoError(t, collection.Reload(ctx))
	require.Equal(t, 1, collection.Len())

	require.NoError(t, view.Delete(ctx, created.ID, confirmYes))
	assert.Zero(t, collection.Len())
}

func TestListView_DeleteDeclinedLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	view, collection, adapter := newSubscriberView(t)

	created, err := adapter.Create(ctx, Subscriber{Email: "stays@example.com", Subscribed: true})
	require.NoError(t, err)
	require.NoError(t, collection.Reload(ctx))

	require.NoError(t, view.Delete(ctx, created.ID, confirmNo))

	assert.Equal(t, 1, collection.Len())
	_, found := collection.Find(created.ID)
	assert.True(t, found)
}

func TestListView_ReadToggleIdempotent(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(t)
	adapter := NewBoltAdapter[Message](store, "send-messages", nil)
	collection := NewCollection[Message](adapter)

	created, err := adapter.Create(ctx, Message{Name: "Artan", Email: "artan@example.com", Message: "Hello"})
	require.NoError(t, err)
	require.NoError(t, collection.Reload(ctx))

	toggles := 0
	view := NewListView(adapter, collection, []Column[Message]{
		{Title: "From", Value: func(m Message) string { return m.Name }},
	}).WithReadToggle(
		func(m Message) bool { return m.IsRead },
		func(ctx context.Context, id string) error {
			toggles++
			m, _ := collection.Find(id)
			m.IsRead = true
			_, err := adapter.Update(ctx, m)
			return err
		},
	)

	// First view marks the message read.
	msg, err := view.View(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, msg.IsRead)
	assert.Equal(t, 1, toggles)

	// Viewing again has no further side effects.
	msg, err = view.View(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, msg.IsRead)
	assert.Equal(t, 1, toggles)
}

func TestListView_ViewMissingRecord(t *testing.T) {
	ctx := context.Background()
	view, collection, _ := newSubscriberView(t)
	require.NoError(t, collection.Reload(ctx))

	_, err := view.View(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListView_TableRendering(t *testing.T) {
	ctx := context.Background()
	view, collection, adapter := newSubscriberView(t)

	_, err := adapter.Create(ctx, Subscriber{Email: "a@example.com", Subscribed: true})
	require.NoError(t, err)
	require.NoError(t, collection.Reload(ctx))

	assert.Equal(t, []string{"Email"}, view.Headers())
	rows := view.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a@example.com"}, rows[0])
}

func TestListView_AccordionRendering(t *testing.T) {
	ctx := context.Background()

	store := newTestStore(t)
	adapter := NewBoltAdapter(store, "faqs", DefaultFaqs)
	collection := NewCollection[Faq](adapter)
	require.NoError(t, collection.Reload(ctx))

	view := NewListView[Faq](adapter, collection, nil).
		WithAccordion(func(f Faq) (string, string) { return f.Question, f.Answer })

	items := view.Accordion()
	require.Len(t, items, 2)
	assert.Equal(t, "Si mund të listoj një pronë?", items[0].Question)
	assert.NotEmpty(t, items[0].ID)
}
