// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pronimal/pronim-admin/internal/imaging"
	"github.com/pronimal/pronim-admin/internal/model"
	"github.com/pronimal/pronim-admin/internal/store"
	"github.com/pronimal/pronim-admin/internal/util"
)

// stripPolicy removes all markup; used to validate rich-text-backed fields.
var stripPolicy = bluemonday.StrictPolicy()

// isBlankMarkup reports whether HTML content is empty once markup is
// stripped. A rich-text field full of empty paragraphs counts as blank.
func isBlankMarkup(html string) bool {
	text := stripPolicy.Sanitize(html)
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	return strings.TrimSpace(text) == ""
}

// BlogsHandler serves the admin blog CRUD and image upload endpoints.
type BlogsHandler struct {
	queries   *store.Queries
	processor *imaging.Processor
}

// NewBlogsHandler creates a new blogs handler.
func NewBlogsHandler(db *sql.DB, processor *imaging.Processor) *BlogsHandler {
	return &BlogsHandler{
		queries:   store.New(db),
		processor: processor,
	}
}

// blogJSON is the wire representation of a blog post.
type blogJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Content     string    `json:"content,omitempty"`
	Format      string    `json:"format"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func blogToJSON(b model.Blog) blogJSON {
	return blogJSON{
		ID:          b.ID,
		Title:       b.Title,
		Slug:        b.Slug,
		Description: b.Description,
		ImageURL:    util.StringFromNull(b.ImageURL),
		Content:     util.StringFromNull(b.Content),
		Format:      b.Format,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type blogListResponse struct {
	Blogs      []blogJSON `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// List handles GET /admin/blogs.
func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	blogs, err := h.queries.ListBlogs(r.Context(), store.ListBlogsParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		slog.Error("failed to list blogs", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	total, err := h.queries.CountBlogs(r.Context())
	if err != nil {
		slog.Error("failed to count blogs", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]blogJSON, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, blogToJSON(b))
	}

	WriteSuccess(w, http.StatusOK, blogListResponse{
		Blogs:      out,
		Pagination: newPagination(page, limit, total),
	})
}

// Get handles GET /admin/blogs/{id}.
func (h *BlogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	blog, err := h.queries.GetBlogByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Blog not found")
			return
		}
		slog.Error("failed to get blog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, blogToJSON(blog))
}

type blogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Content     string `json:"content"`
	Format      string `json:"format"`
}

func (req *blogRequest) validate() string {
	if strings.TrimSpace(req.Title) == "" {
		return "Title is required"
	}
	if isBlankMarkup(req.Description) {
		return "Description is required"
	}
	if req.Format != "" && req.Format != model.ContentFormatHTML && req.Format != model.ContentFormatMarkdown {
		return "Unsupported content format"
	}
	return ""
}

// Create handles POST /admin/blogs.
func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	format := req.Format
	if format == "" {
		format = model.ContentFormatHTML
	}

	slug, err := h.uniqueSlug(r.Context(), req.Title, "")
	if err != nil {
		slog.Error("failed to generate slug", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	blog, err := h.queries.CreateBlog(r.Context(), store.CreateBlogParams{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Description: req.Description,
		ImageURL:    util.NullStringFromValue(req.ImageURL),
		Content:     util.NullStringFromValue(req.Content),
		Format:      format,
	})
	if err != nil {
		slog.Error("failed to create blog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("blog created", "category", "content", "id", blog.ID, "slug", blog.Slug)
	WriteSuccess(w, http.StatusCreated, blogToJSON(blog))
}

// Update handles PUT /admin/blogs/{id}.
func (h *BlogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.queries.GetBlogByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Blog not found")
			return
		}
		slog.Error("failed to get blog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req blogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	slug := existing.Slug
	if strings.TrimSpace(req.Title) != existing.Title {
		slug, err = h.uniqueSlug(r.Context(), req.Title, id)
		if err != nil {
			slog.Error("failed to generate slug", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	format := req.Format
	if format == "" {
		format = existing.Format
	}

	err = h.queries.UpdateBlog(r.Context(), store.UpdateBlogParams{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Description: req.Description,
		ImageURL:    util.NullStringFromValue(req.ImageURL),
		Content:     util.NullStringFromValue(req.Content),
		Format:      format,
	})
	if err != nil {
		slog.Error("failed to update blog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetBlogByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to reload blog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, blogToJSON(updated))
}

// Delete handles DELETE /admin/blogs/{id}.
func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.queries.GetBlogByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Blog not found")
			return
		}
		slog.Error("failed to get blog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.queries.DeleteBlog(r.Context(), id); err != nil {
		slog.Error("failed to delete blog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("blog deleted", "category", "content", "id", id)
	WriteMessage(w, http.StatusOK, "Blog deleted")
}

// maxUploadSize limits blog image uploads to 10 MB.
const maxUploadSize = 10 << 20

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage handles POST /admin/blogs/upload-image (multipart field
// "image").
func (h *BlogsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form or file too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Missing image field")
		return
	}
	defer func() { _ = file.Close() }()

	imageUUID := uuid.NewString()
	result, err := h.processor.ProcessImage(file, imageUUID, header.Filename)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Unsupported or corrupt image file")
		return
	}

	if _, err := h.processor.CreateAllVariants(result.FilePath, imageUUID, header.Filename); err != nil {
		slog.Warn("failed to create image variants", "error", err)
	}

	upload, err := h.queries.CreateUpload(r.Context(), store.CreateUploadParams{
		UUID:     imageUUID,
		Filename: header.Filename,
		MimeType: result.MimeType,
		Size:     result.Size,
		Width:    sql.NullInt64{Int64: int64(result.Width), Valid: true},
		Height:   sql.NullInt64{Int64: int64(result.Height), Valid: true},
	})
	if err != nil {
		slog.Error("failed to record upload", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("image uploaded", "category", "content", "uuid", upload.UUID, "size", upload.Size)
	WriteSuccess(w, http.StatusCreated, uploadResponse{URL: upload.URL()})
}

// uniqueSlug slugifies the title and appends a numeric suffix until the
// slug is free.
func (h *BlogsHandler) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := util.Slugify(title)
	if base == "" {
		base = "blog"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := h.queries.BlogSlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
