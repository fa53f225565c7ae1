// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketCollections = []byte("collections")

// Store is a local bolt-backed key-value store. Each collection lives
// in a named slot holding the JSON-encoded full collection; mutations
// rewrite the whole slot, so the last writer wins.
type Store struct {
	db *bbolt.DB
}

// OpenStore opens (or creates) the bolt file at path.
func OpenStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCollections)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying bolt file.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) readSlot(slot string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketCollections).Get([]byte(slot)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data, err
}

func (s *Store) writeSlot(slot string, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCollections).Put([]byte(slot), data)
	})
}

// BoltAdapter persists one collection in a named slot of a Store. The
// first List seeds the slot with the collection's default records when
// the slot is empty.
type BoltAdapter[T Entity[T]] struct {
	store *Store
	slot  string
	seed  func() []T
}

// NewBoltAdapter creates a bolt binding for the given slot. seed may be
// nil for collections that start empty.
func NewBoltAdapter[T Entity[T]](store *Store, slot string, seed func() []T) *BoltAdapter[T] {
	return &BoltAdapter[T]{store: store, slot: slot, seed: seed}
}

// List returns the full collection, seeding the slot on first access.
func (a *BoltAdapter[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := a.store.readSlot(a.slot)
	if err != nil {
		return nil, fmt.Errorf("reading slot %q: %w", a.slot, err)
	}

	if data == nil {
		var records []T
		if a.seed != nil {
			records = a.seed()
		}
		if err := a.writeAll(records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding slot %q: %w", a.slot, err)
	}
	return records, nil
}

// Create assigns a fresh ID and appends the record to the collection.
func (a *BoltAdapter[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	records, err := a.List(ctx)
	if err != nil {
		return zero, err
	}

	created := rec.WithID(NewRecordID())
	records = append(records, created)
	if err := a.writeAll(records); err != nil {
		return zero, err
	}
	return created, nil
}

// Update replaces the record with the matching ID.
func (a *BoltAdapter[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T

	records, err := a.List(ctx)
	if err != nil {
		return zero, err
	}

	for i, existing := range records {
		if existing.RecordID() == rec.RecordID() {
			records[i] = rec
			if err := a.writeAll(records); err != nil {
				return zero, err
			}
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

// Remove deletes the record with the given ID. Removing a missing ID is
// a no-op.
func (a *BoltAdapter[T]) Remove(ctx context.Context, id string) error {
	records, err := a.List(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return a.writeAll(kept)
}

func (a *BoltAdapter[T]) writeAll(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding slot %q: %w", a.slot, err)
	}
	if err := a.store.writeSlot(a.slot, data); err != nil {
		return fmt.Errorf("writing slot %q: %w", a.slot, err)
	}
	return nil
}
