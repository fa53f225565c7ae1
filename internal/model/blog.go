// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application.
package model

import (
	"database/sql"
	"time"
)

// Content formats for rich-text backed records.
const (
	ContentFormatHTML     = "html"
	ContentFormatMarkdown = "markdown"
)

// Blog represents a blog post shown on the public site and managed
// from the dashboard.
type Blog struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	ImageURL    sql.NullString `json:"-"`
	Content     sql.NullString `json:"-"`
	Format      string         `json:"format"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// HasImage returns true if the post carries a cover image URL.
func (b *Blog) HasImage() bool {
	return b.ImageURL.Valid && b.ImageURL.String != ""
}
