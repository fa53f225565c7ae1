// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"time"
)

// Subscriber represents a newsletter subscription.
type Subscriber struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Subscribed bool      `json:"subscribed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Message represents a contact-form submission ("send message").
// Country, Browser and OS are filled server-side from the submitting
// request when available.
type Message struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email"`
	Phone      sql.NullString `json:"-"`
	Message    string         `json:"message"`
	GdprAgreed bool           `json:"gdprAgreed"`
	IsRead     bool           `json:"isRead"`
	Country    sql.NullString `json:"-"`
	Browser    sql.NullString `json:"-"`
	OS         sql.NullString `json:"-"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Enquiry represents a property request-form submission.
type Enquiry struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         sql.NullString `json:"-"`
	Message       string         `json:"message"`
	ConsentAgreed bool           `json:"consentAgreed"`
	Country       sql.NullString `json:"-"`
	Browser       sql.NullString `json:"-"`
	OS            sql.NullString `json:"-"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
