// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pronimal/pronim-admin/internal/model"
)

// Subscribers

const listSubscribers = `
SELECT id, email, subscribed, created_at, updated_at
FROM subscribers ORDER BY created_at DESC LIMIT ? OFFSET ?
`

// ListSubscribersParams holds pagination for ListSubscribers.
type ListSubscribersParams struct {
	Limit  int64
	Offset int64
}

// ListSubscribers returns newsletter subscribers, newest first.
func (q *Queries) ListSubscribers(ctx context.Context, arg ListSubscribersParams) ([]model.Subscriber, error) {
	rows, err := q.db.QueryContext(ctx, listSubscribers, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Subscribed, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

const countSubscribers = `SELECT COUNT(*) FROM subscribers`

// CountSubscribers returns the total number of subscribers.
func (q *Queries) CountSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countSubscribers).Scan(&count)
	return count, err
}

const countSubscribedSubscribers = `SELECT COUNT(*) FROM subscribers WHERE subscribed = 1`

// CountSubscribedSubscribers returns the number of active subscriptions.
func (q *Queries) CountSubscribedSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countSubscribedSubscribers).Scan(&count)
	return count, err
}

const getSubscriberByID = `
SELECT id, email, subscribed, created_at, updated_at FROM subscribers WHERE id = ?
`

// GetSubscriberByID returns the subscriber with the given ID.
func (q *Queries) GetSubscriberByID(ctx context.Context, id string) (model.Subscriber, error) {
	var s model.Subscriber
	err := q.db.QueryRowContext(ctx, getSubscriberByID, id).Scan(
		&s.ID, &s.Email, &s.Subscribed, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const getSubscriberByEmail = `
SELECT id, email, subscribed, created_at, updated_at FROM subscribers WHERE email = ?
`

// GetSubscriberByEmail returns the subscriber with the given email address.
func (q *Queries) GetSubscriberByEmail(ctx context.Context, email string) (model.Subscriber, error) {
	var s model.Subscriber
	err := q.db.QueryRowContext(ctx, getSubscriberByEmail, email).Scan(
		&s.ID, &s.Email, &s.Subscribed, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const createSubscriber = `
INSERT INTO subscribers (id, email, subscribed, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
`

// CreateSubscriberParams holds the fields for CreateSubscriber.
type CreateSubscriberParams struct {
	ID         string
	Email      string
	Subscribed bool
}

// CreateSubscriber inserts a newsletter subscription.
func (q *Queries) CreateSubscriber(ctx context.Context, arg CreateSubscriberParams) (model.Subscriber, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createSubscriber,
		arg.ID, arg.Email, arg.Subscribed, now, now)
	if err != nil {
		return model.Subscriber{}, err
	}
	return model.Subscriber{
		ID: arg.ID, Email: arg.Email, Subscribed: arg.Subscribed,
		CreatedAt: now, UpdatedAt: now,
	}, nil
}

const updateSubscriberStatus = `
UPDATE subscribers SET subscribed = ?, updated_at = ? WHERE id = ?
`

// UpdateSubscriberStatus toggles a subscription on or off.
func (q *Queries) UpdateSubscriberStatus(ctx context.Context, id string, subscribed bool) error {
	_, err := q.db.ExecContext(ctx, updateSubscriberStatus, subscribed, time.Now().UTC(), id)
	return err
}

const deleteSubscriber = `DELETE FROM subscribers WHERE id = ?`

// DeleteSubscriber removes a subscriber.
func (q *Queries) DeleteSubscriber(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteSubscriber, id)
	return err
}

// Contact messages

const listMessages = `
SELECT id, name, last_name, email, phone, message, gdpr_agreed, is_read,
       country, browser, os, created_at, updated_at
FROM messages ORDER BY created_at DESC LIMIT ? OFFSET ?
`

// ListMessagesParams holds pagination for ListMessages.
type ListMessagesParams struct {
	Limit  int64
	Offset int64
}

// ListMessages returns contact messages, newest first.
func (q *Queries) ListMessages(ctx context.Context, arg ListMessagesParams) ([]model.Message, error) {
	rows, err := q.db.QueryContext(ctx, listMessages, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.LastName, &m.Email, &m.Phone,
			&m.Message, &m.GdprAgreed, &m.IsRead, &m.Country, &m.Browser, &m.OS,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

const countMessages = `SELECT COUNT(*) FROM messages`

// CountMessages returns the total number of contact messages.
func (q *Queries) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countMessages).Scan(&count)
	return count, err
}

const countUnreadMessages = `SELECT COUNT(*) FROM messages WHERE is_read = 0`

// CountUnreadMessages returns the number of unread contact messages.
func (q *Queries) CountUnreadMessages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countUnreadMessages).Scan(&count)
	return count, err
}

const getMessageByID = `
SELECT id, name, last_name, email, phone, message, gdpr_agreed, is_read,
       country, browser, os, created_at, updated_at
FROM messages WHERE id = ?
`

// GetMessageByID returns the contact message with the given ID.
func (q *Queries) GetMessageByID(ctx context.Context, id string) (model.Message, error) {
	var m model.Message
	err := q.db.QueryRowContext(ctx, getMessageByID, id).Scan(
		&m.ID, &m.Name, &m.LastName, &m.Email, &m.Phone,
		&m.Message, &m.GdprAgreed, &m.IsRead, &m.Country, &m.Browser, &m.OS,
		&m.CreatedAt, &m.UpdatedAt)
	return m, err
}

const createMessage = `
INSERT INTO messages (id, name, last_name, email, phone, message, gdpr_agreed,
                      is_read, country, browser, os, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?, ?, ?)
`

// CreateMessageParams holds the fields for CreateMessage.
type CreateMessageParams struct {
	ID         string
	Name       string
	LastName   string
	Email      string
	Phone      sql.NullString
	Message    string
	GdprAgreed bool
	Country    sql.NullString
	Browser    sql.NullString
	OS         sql.NullString
}

// CreateMessage inserts a contact-form message. New messages start unread.
func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (model.Message, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createMessage,
		arg.ID, arg.Name, arg.LastName, arg.Email, arg.Phone, arg.Message,
		arg.GdprAgreed, arg.Country, arg.Browser, arg.OS, now, now)
	if err != nil {
		return model.Message{}, err
	}
	return model.Message{
		ID: arg.ID, Name: arg.Name, LastName: arg.LastName, Email: arg.Email,
		Phone: arg.Phone, Message: arg.Message, GdprAgreed: arg.GdprAgreed,
		Country: arg.Country, Browser: arg.Browser, OS: arg.OS,
		CreatedAt: now, UpdatedAt: now,
	}, nil
}

const setMessageRead = `
UPDATE messages SET is_read = ?, updated_at = ? WHERE id = ?
`

// SetMessageRead marks a contact message as read or unread. Idempotent.
func (q *Queries) SetMessageRead(ctx context.Context, id string, isRead bool) error {
	_, err := q.db.ExecContext(ctx, setMessageRead, isRead, time.Now().UTC(), id)
	return err
}

const deleteMessage = `DELETE FROM messages WHERE id = ?`

// DeleteMessage removes a contact message.
func (q *Queries) DeleteMessage(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteMessage, id)
	return err
}

// Enquiries

const listEnquiries = `
SELECT id, name, email, phone, message, consent_agreed,
       country, browser, os, created_at, updated_at
FROM enquiries ORDER BY created_at DESC LIMIT ? OFFSET ?
`

// ListEnquiriesParams holds pagination for ListEnquiries.
type ListEnquiriesParams struct {
	Limit  int64
	Offset int64
}

// ListEnquiries returns request-form enquiries, newest first.
func (q *Queries) ListEnquiries(ctx context.Context, arg ListEnquiriesParams) ([]model.Enquiry, error) {
	rows, err := q.db.QueryContext(ctx, listEnquiries, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enquiries []model.Enquiry
	for rows.Next() {
		var e model.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message,
			&e.ConsentAgreed, &e.Country, &e.Browser, &e.OS,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

const countEnquiries = `SELECT COUNT(*) FROM enquiries`

// CountEnquiries returns the total number of enquiries.
func (q *Queries) CountEnquiries(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countEnquiries).Scan(&count)
	return count, err
}

const getEnquiryByID = `
SELECT id, name, email, phone, message, consent_agreed,
       country, browser, os, created_at, updated_at
FROM enquiries WHERE id = ?
`

// GetEnquiryByID returns the enquiry with the given ID.
func (q *Queries) GetEnquiryByID(ctx context.Context, id string) (model.Enquiry, error) {
	var e model.Enquiry
	err := q.db.QueryRowContext(ctx, getEnquiryByID, id).Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message,
		&e.ConsentAgreed, &e.Country, &e.Browser, &e.OS,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const createEnquiry = `
INSERT INTO enquiries (id, name, email, phone, message, consent_agreed,
                       country, browser, os, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// CreateEnquiryParams holds the fields for CreateEnquiry.
type CreateEnquiryParams struct {
	ID            string
	Name          string
	Email         string
	Phone         sql.NullString
	Message       string
	ConsentAgreed bool
	Country       sql.NullString
	Browser       sql.NullString
	OS            sql.NullString
}

// CreateEnquiry inserts a request-form enquiry.
func (q *Queries) CreateEnquiry(ctx context.Context, arg CreateEnquiryParams) (model.Enquiry, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createEnquiry,
		arg.ID, arg.Name, arg.Email, arg.Phone, arg.Message,
		arg.ConsentAgreed, arg.Country, arg.Browser, arg.OS, now, now)
	if err != nil {
		return model.Enquiry{}, err
	}
	return model.Enquiry{
		ID: arg.ID, Name: arg.Name, Email: arg.Email, Phone: arg.Phone,
		Message: arg.Message, ConsentAgreed: arg.ConsentAgreed,
		Country: arg.Country, Browser: arg.Browser, OS: arg.OS,
		CreatedAt: now, UpdatedAt: now,
	}, nil
}

const deleteEnquiry = `DELETE FROM enquiries WHERE id = ?`

// DeleteEnquiry removes an enquiry.
func (q *Queries) DeleteEnquiry(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteEnquiry, id)
	return err
}
