// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// User represents an administrator account. The dashboard is single-tenant:
// one account is bootstrapped from configuration, but the table supports
// more.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	LastLoginAt  sql.NullTime `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Upload represents a stored blog image and its generated variants.
type Upload struct {
	ID        string        `json:"id"`
	UUID      string        `json:"uuid"`
	Filename  string        `json:"filename"`
	MimeType  string        `json:"mimeType"`
	Size      int64         `json:"size"`
	Width     sql.NullInt64 `json:"-"`
	Height    sql.NullInt64 `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
}

// URL returns the public path of the original file.
func (u *Upload) URL() string {
	return "/uploads/originals/" + u.UUID + "/" + u.Filename
}
