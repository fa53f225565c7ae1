// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Static page kinds
const (
	PageKindPrivacy = "privacy-policy"
	PageKindTerms   = "terms-and-conditions"
)

// StaticPage represents a singleton legal page (privacy policy, terms and
// conditions). Content is opaque HTML unless Format is markdown, in which
// case it is markdown source rendered at read time.
type StaticPage struct {
	ID        string    `json:"id"`
	Kind      string    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Format    string    `json:"format"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInfo is the singleton contact information block shown on the
// public site footer and the contact page.
type ContactInfo struct {
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	WorkingHours string    `json:"workingHours"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
