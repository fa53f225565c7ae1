// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dashboard implements the generalized CRUD page pattern shared
// by every admin view: a persistence adapter with a local bolt binding
// and an HTTP REST binding, reload-on-demand collection state, a
// draft-based form controller, and list rendering with confirm-gated
// deletes.
package dashboard

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// Record is the minimal contract every dashboard entity satisfies.
type Record interface {
	RecordID() string
}

// Entity is a record that can produce an independent draft copy of
// itself and a copy carrying a different ID. The self-referential type
// parameter keeps Clone and WithID strongly typed per entity.
type Entity[T any] interface {
	Record
	Clone() T
	WithID(id string) T
}

// ErrNotFound is returned when an operation targets an ID that does not
// exist in the collection.
var ErrNotFound = errors.New("record not found")

// Adapter reads and writes one entity collection. Implementations:
// BoltAdapter (local key-value slots) and RESTAdapter (HTTP API).
type Adapter[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Remove(ctx context.Context, id string) error
}

// NewRecordID generates a short random token used as a locally assigned
// record ID.
func NewRecordID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
