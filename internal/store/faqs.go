// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pronimal/pronim-admin/internal/model"
)

const listFaqs = `
SELECT id, question, answer, category, position, created_at, updated_at
FROM faqs ORDER BY position, created_at
LIMIT ? OFFSET ?
`

// ListFaqsParams holds the page window for ListFaqs and ListFaqsByCategory.
type ListFaqsParams struct {
	Limit  int64
	Offset int64
}

// ListFaqs returns a page of FAQ entries in display order.
func (q *Queries) ListFaqs(ctx context.Context, arg ListFaqsParams) ([]model.Faq, error) {
	rows, err := q.db.QueryContext(ctx, listFaqs, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFaqs(rows)
}

const listFaqsByCategory = `
SELECT id, question, answer, category, position, created_at, updated_at
FROM faqs WHERE category = ? ORDER BY position, created_at
LIMIT ? OFFSET ?
`

// ListFaqsByCategory returns a page of FAQ entries for a single category in
// display order.
func (q *Queries) ListFaqsByCategory(ctx context.Context, category string, arg ListFaqsParams) ([]model.Faq, error) {
	rows, err := q.db.QueryContext(ctx, listFaqsByCategory, category, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFaqs(rows)
}

func scanFaqs(rows *sql.Rows) ([]model.Faq, error) {
	var faqs []model.Faq
	for rows.Next() {
		var f model.Faq
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category,
			&f.Position, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

const getFaqByID = `
SELECT id, question, answer, category, position, created_at, updated_at
FROM faqs WHERE id = ?
`

// GetFaqByID returns the FAQ entry with the given ID.
func (q *Queries) GetFaqByID(ctx context.Context, id string) (model.Faq, error) {
	var f model.Faq
	err := q.db.QueryRowContext(ctx, getFaqByID, id).Scan(
		&f.ID, &f.Question, &f.Answer, &f.Category,
		&f.Position, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

const getMaxFaqPosition = `
SELECT COALESCE(MAX(position), 0) FROM faqs WHERE category = ?
`

// GetMaxFaqPosition returns the highest position within a category.
func (q *Queries) GetMaxFaqPosition(ctx context.Context, category string) (int64, error) {
	var pos int64
	err := q.db.QueryRowContext(ctx, getMaxFaqPosition, category).Scan(&pos)
	return pos, err
}

const createFaq = `
INSERT INTO faqs (id, question, answer, category, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

// CreateFaqParams holds the fields for CreateFaq.
type CreateFaqParams struct {
	ID       string
	Question string
	Answer   string
	Category string
	Position int64
}

// CreateFaq inserts a new FAQ entry.
func (q *Queries) CreateFaq(ctx context.Context, arg CreateFaqParams) (model.Faq, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createFaq,
		arg.ID, arg.Question, arg.Answer, arg.Category, arg.Position, now, now)
	if err != nil {
		return model.Faq{}, err
	}
	return model.Faq{
		ID: arg.ID, Question: arg.Question, Answer: arg.Answer,
		Category: arg.Category, Position: arg.Position,
		CreatedAt: now, UpdatedAt: now,
	}, nil
}

const updateFaq = `
UPDATE faqs SET question = ?, answer = ?, category = ?, position = ?, updated_at = ?
WHERE id = ?
`

// UpdateFaqParams holds the fields for UpdateFaq.
type UpdateFaqParams struct {
	ID       string
	Question string
	Answer   string
	Category string
	Position int64
}

// UpdateFaq replaces the mutable fields of an FAQ entry.
func (q *Queries) UpdateFaq(ctx context.Context, arg UpdateFaqParams) error {
	_, err := q.db.ExecContext(ctx, updateFaq,
		arg.Question, arg.Answer, arg.Category, arg.Position,
		time.Now().UTC(), arg.ID)
	return err
}

const deleteFaq = `DELETE FROM faqs WHERE id = ?`

// DeleteFaq removes an FAQ entry.
func (q *Queries) DeleteFaq(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteFaq, id)
	return err
}

const countFaqs = `SELECT COUNT(*) FROM faqs`

// CountFaqs returns the total number of FAQ entries.
func (q *Queries) CountFaqs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFaqs).Scan(&count)
	return count, err
}

const countFaqsByCategory = `SELECT COUNT(*) FROM faqs WHERE category = ?`

// CountFaqsByCategory returns the number of FAQ entries in a category.
func (q *Queries) CountFaqsByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFaqsByCategory, category).Scan(&count)
	return count, err
}
