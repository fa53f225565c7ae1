// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pronimal/pronim-admin/internal/model"
)

const createUpload = `
INSERT INTO uploads (uuid, filename, mime_type, size, width, height, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

// CreateUploadParams holds the fields for CreateUpload.
type CreateUploadParams struct {
	UUID     string
	Filename string
	MimeType string
	Size     int64
	Width    sql.NullInt64
	Height   sql.NullInt64
}

// CreateUpload records an uploaded image.
func (q *Queries) CreateUpload(ctx context.Context, arg CreateUploadParams) (model.Upload, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createUpload,
		arg.UUID, arg.Filename, arg.MimeType, arg.Size, arg.Width, arg.Height, now)
	if err != nil {
		return model.Upload{}, err
	}
	return model.Upload{
		UUID: arg.UUID, Filename: arg.Filename, MimeType: arg.MimeType,
		Size: arg.Size, Width: arg.Width, Height: arg.Height, CreatedAt: now,
	}, nil
}

const getUploadByUUID = `
SELECT uuid, filename, mime_type, size, width, height, created_at
FROM uploads WHERE uuid = ?
`

// GetUploadByUUID returns the upload record with the given UUID.
func (q *Queries) GetUploadByUUID(ctx context.Context, uuid string) (model.Upload, error) {
	var u model.Upload
	err := q.db.QueryRowContext(ctx, getUploadByUUID, uuid).Scan(
		&u.UUID, &u.Filename, &u.MimeType, &u.Size, &u.Width, &u.Height, &u.CreatedAt)
	return u, err
}

const deleteUpload = `DELETE FROM uploads WHERE uuid = ?`

// DeleteUpload removes an upload record.
func (q *Queries) DeleteUpload(ctx context.Context, uuid string) error {
	_, err := q.db.ExecContext(ctx, deleteUpload, uuid)
	return err
}
