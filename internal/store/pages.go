// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/pronimal/pronim-admin/internal/model"
)

const getStaticPage = `
SELECT kind, title, content, format, updated_at FROM static_pages WHERE kind = ?
`

// GetStaticPage returns the legal page of the given kind.
func (q *Queries) GetStaticPage(ctx context.Context, kind string) (model.StaticPage, error) {
	var p model.StaticPage
	err := q.db.QueryRowContext(ctx, getStaticPage, kind).Scan(
		&p.Kind, &p.Title, &p.Content, &p.Format, &p.UpdatedAt)
	return p, err
}

const upsertStaticPage = `
INSERT INTO static_pages (kind, title, content, format, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(kind) DO UPDATE SET
    title = excluded.title,
    content = excluded.content,
    format = excluded.format,
    updated_at = excluded.updated_at
`

// UpsertStaticPageParams holds the fields for UpsertStaticPage.
type UpsertStaticPageParams struct {
	Kind    string
	Title   string
	Content string
	Format  string
}

// UpsertStaticPage creates or replaces a legal page.
func (q *Queries) UpsertStaticPage(ctx context.Context, arg UpsertStaticPageParams) (model.StaticPage, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, upsertStaticPage,
		arg.Kind, arg.Title, arg.Content, arg.Format, now)
	if err != nil {
		return model.StaticPage{}, err
	}
	return model.StaticPage{
		Kind: arg.Kind, Title: arg.Title, Content: arg.Content,
		Format: arg.Format, UpdatedAt: now,
	}, nil
}

const getContactInfo = `
SELECT address, phone, email, working_hours, updated_at FROM contact_info WHERE id = 1
`

// GetContactInfo returns the site contact details singleton.
func (q *Queries) GetContactInfo(ctx context.Context) (model.ContactInfo, error) {
	var c model.ContactInfo
	err := q.db.QueryRowContext(ctx, getContactInfo).Scan(
		&c.Address, &c.Phone, &c.Email, &c.WorkingHours, &c.UpdatedAt)
	return c, err
}

const upsertContactInfo = `
INSERT INTO contact_info (id, address, phone, email, working_hours, updated_at)
VALUES (1, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    address = excluded.address,
    phone = excluded.phone,
    email = excluded.email,
    working_hours = excluded.working_hours,
    updated_at = excluded.updated_at
`

// UpsertContactInfoParams holds the fields for UpsertContactInfo.
type UpsertContactInfoParams struct {
	Address      string
	Phone        string
	Email        string
	WorkingHours string
}

// UpsertContactInfo creates or replaces the contact details singleton.
func (q *Queries) UpsertContactInfo(ctx context.Context, arg UpsertContactInfoParams) (model.ContactInfo, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, upsertContactInfo,
		arg.Address, arg.Phone, arg.Email, arg.WorkingHours, now)
	if err != nil {
		return model.ContactInfo{}, err
	}
	return model.ContactInfo{
		Address: arg.Address, Phone: arg.Phone, Email: arg.Email,
		WorkingHours: arg.WorkingHours, UpdatedAt: now,
	}, nil
}
