// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/pronimal/pronim-admin/internal/model"
)

const createUser = `
INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`

// CreateUserParams holds the fields for CreateUser.
type CreateUserParams struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
}

// CreateUser inserts a new admin user.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createUser,
		arg.ID, arg.Username, arg.Email, arg.PasswordHash, now, now)
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:           arg.ID,
		Username:     arg.Username,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

const getUserByID = `
SELECT id, username, email, password_hash, last_login_at, created_at, updated_at
FROM users WHERE id = ?
`

// GetUserByID returns the user with the given ID.
func (q *Queries) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := q.db.QueryRowContext(ctx, getUserByID, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByIdentifier = `
SELECT id, username, email, password_hash, last_login_at, created_at, updated_at
FROM users WHERE username = ? OR email = ?
`

// GetUserByIdentifier looks up a user by username or email address.
func (q *Queries) GetUserByIdentifier(ctx context.Context, identifier string) (model.User, error) {
	var u model.User
	err := q.db.QueryRowContext(ctx, getUserByIdentifier, identifier, identifier).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const updateUserLastLogin = `
UPDATE users SET last_login_at = ?, updated_at = ? WHERE id = ?
`

// UpdateUserLastLogin records a successful login.
func (q *Queries) UpdateUserLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := q.db.ExecContext(ctx, updateUserLastLogin, at, at, id)
	return err
}

const updateUserPassword = `
UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?
`

// UpdateUserPassword replaces the stored password hash.
func (q *Queries) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	_, err := q.db.ExecContext(ctx, updateUserPassword, passwordHash, time.Now().UTC(), id)
	return err
}

const countUsers = `SELECT COUNT(*) FROM users`

// CountUsers returns the total number of admin users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&count)
	return count, err
}
