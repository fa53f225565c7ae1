// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pronimal/pronim-admin/internal/model"
)

const listBlogs = `
SELECT id, title, slug, description, image_url, content, format, created_at, updated_at
FROM blogs ORDER BY created_at DESC LIMIT ? OFFSET ?
`

// ListBlogsParams holds pagination for ListBlogs.
type ListBlogsParams struct {
	Limit  int64
	Offset int64
}

// ListBlogs returns blogs ordered newest first.
func (q *Queries) ListBlogs(ctx context.Context, arg ListBlogsParams) ([]model.Blog, error) {
	rows, err := q.db.QueryContext(ctx, listBlogs, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Description,
			&b.ImageURL, &b.Content, &b.Format, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

const countBlogs = `SELECT COUNT(*) FROM blogs`

// CountBlogs returns the total number of blogs.
func (q *Queries) CountBlogs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countBlogs).Scan(&count)
	return count, err
}

const getBlogByID = `
SELECT id, title, slug, description, image_url, content, format, created_at, updated_at
FROM blogs WHERE id = ?
`

// GetBlogByID returns the blog with the given ID.
func (q *Queries) GetBlogByID(ctx context.Context, id string) (model.Blog, error) {
	var b model.Blog
	err := q.db.QueryRowContext(ctx, getBlogByID, id).Scan(
		&b.ID, &b.Title, &b.Slug, &b.Description,
		&b.ImageURL, &b.Content, &b.Format, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const getBlogBySlug = `
SELECT id, title, slug, description, image_url, content, format, created_at, updated_at
FROM blogs WHERE slug = ?
`

// GetBlogBySlug returns the blog with the given slug.
func (q *Queries) GetBlogBySlug(ctx context.Context, slug string) (model.Blog, error) {
	var b model.Blog
	err := q.db.QueryRowContext(ctx, getBlogBySlug, slug).Scan(
		&b.ID, &b.Title, &b.Slug, &b.Description,
		&b.ImageURL, &b.Content, &b.Format, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const blogSlugExists = `SELECT COUNT(*) FROM blogs WHERE slug = ? AND id != ?`

// BlogSlugExists reports whether another blog already uses the slug.
func (q *Queries) BlogSlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, blogSlugExists, slug, excludeID).Scan(&count)
	return count > 0, err
}

const createBlog = `
INSERT INTO blogs (id, title, slug, description, image_url, content, format, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// CreateBlogParams holds the fields for CreateBlog.
type CreateBlogParams struct {
	ID          string
	Title       string
	Slug        string
	Description string
	ImageURL    sql.NullString
	Content     sql.NullString
	Format      string
}

// CreateBlog inserts a new blog post.
func (q *Queries) CreateBlog(ctx context.Context, arg CreateBlogParams) (model.Blog, error) {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, createBlog,
		arg.ID, arg.Title, arg.Slug, arg.Description,
		arg.ImageURL, arg.Content, arg.Format, now, now)
	if err != nil {
		return model.Blog{}, err
	}
	return model.Blog{
		ID:          arg.ID,
		Title:       arg.Title,
		Slug:        arg.Slug,
		Description: arg.Description,
		ImageURL:    arg.ImageURL,
		Content:     arg.Content,
		Format:      arg.Format,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

const updateBlog = `
UPDATE blogs
SET title = ?, slug = ?, description = ?, image_url = ?, content = ?, format = ?, updated_at = ?
WHERE id = ?
`

// UpdateBlogParams holds the fields for UpdateBlog.
type UpdateBlogParams struct {
	ID          string
	Title       string
	Slug        string
	Description string
	ImageURL    sql.NullString
	Content     sql.NullString
	Format      string
}

// UpdateBlog replaces the mutable fields of a blog post.
func (q *Queries) UpdateBlog(ctx context.Context, arg UpdateBlogParams) error {
	_, err := q.db.ExecContext(ctx, updateBlog,
		arg.Title, arg.Slug, arg.Description, arg.ImageURL,
		arg.Content, arg.Format, time.Now().UTC(), arg.ID)
	return err
}

const deleteBlog = `DELETE FROM blogs WHERE id = ?`

// DeleteBlog removes a blog post. Deleting a missing ID is not an error.
func (q *Queries) DeleteBlog(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteBlog, id)
	return err
}
