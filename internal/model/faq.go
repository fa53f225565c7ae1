// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// FAQ categories
const (
	FaqCategoryGeneral  = "general"
	FaqCategoryAgents   = "agents"
	FaqCategoryOwners   = "owners"
	FaqCategoryListings = "listings"
)

// FaqCategories returns all known FAQ categories.
func FaqCategories() []string {
	return []string{
		FaqCategoryGeneral,
		FaqCategoryAgents,
		FaqCategoryOwners,
		FaqCategoryListings,
	}
}

// IsValidFaqCategory reports whether category is one of the known discriminators.
func IsValidFaqCategory(category string) bool {
	for _, c := range FaqCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// Faq represents a question/answer pair. Answer is opaque HTML from the
// dashboard's rich-text editor.
type Faq struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Position  int64     `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
