// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import "context"

// Collection holds the in-memory state of one entity type. State is
// replaced wholesale by Reload; it is never patched locally after a
// REST mutation, so the adapter stays the single source of truth.
type Collection[T Entity[T]] struct {
	adapter Adapter[T]
	current []T
}

// NewCollection creates an empty collection bound to an adapter.
func NewCollection[T Entity[T]](adapter Adapter[T]) *Collection[T] {
	return &Collection[T]{adapter: adapter}
}

// Reload fetches the fresh collection and replaces the in-memory state.
// On error the previous state is kept.
func (c *Collection[T]) Reload(ctx context.Context) error {
	records, err := c.adapter.List(ctx)
	if err != nil {
		return err
	}
	c.current = records
	return nil
}

// Current returns the loaded records. The returned slice is a copy;
// mutating it does not affect the collection.
func (c *Collection[T]) Current() []T {
	out := make([]T, len(c.current))
	copy(out, c.current)
	return out
}

// Len returns the number of loaded records.
func (c *Collection[T]) Len() int {
	return len(c.current)
}

// Find returns the loaded record with the given ID.
func (c *Collection[T]) Find(id string) (T, bool) {
	for _, rec := range c.current {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
