// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pronimal/pronim-admin/internal/model"
	"github.com/pronimal/pronim-admin/internal/store"
)

// markdown renders legal-page markdown source to HTML.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// PagesHandler serves the legal pages and the contact-info singleton.
type PagesHandler struct {
	queries *store.Queries
}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler(db *sql.DB) *PagesHandler {
	return &PagesHandler{queries: store.New(db)}
}

type staticPageJSON struct {
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Format    string    `json:"format"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func staticPageToJSON(p model.StaticPage) staticPageJSON {
	out := staticPageJSON{
		Kind:      p.Kind,
		Title:     p.Title,
		Content:   p.Content,
		Format:    p.Format,
		HTML:      p.Content,
		UpdatedAt: p.UpdatedAt,
	}

	if p.Format == model.ContentFormatMarkdown {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(p.Content), &buf); err == nil {
			out.HTML = buf.String()
		}
	}

	return out
}

// GetPage returns a handler for GET /admin/{kind} where kind is one of the
// legal page kinds.
func (h *PagesHandler) GetPage(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.queries.GetStaticPage(r.Context(), kind)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteError(w, http.StatusNotFound, "Page not found")
				return
			}
			slog.Error("failed to get static page", "error", err, "kind", kind)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		WriteSuccess(w, http.StatusOK, staticPageToJSON(page))
	}
}

type staticPageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Format  string `json:"format"`
}

// PutPage returns a handler for PUT /admin/{kind}.
func (h *PagesHandler) PutPage(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req staticPageRequest
		if err := decodeJSON(w, r, &req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if strings.TrimSpace(req.Title) == "" {
			WriteError(w, http.StatusBadRequest, "Title is required")
			return
		}
		if isBlankMarkup(req.Content) {
			WriteError(w, http.StatusBadRequest, "Content is required")
			return
		}

		format := req.Format
		if format == "" {
			format = model.ContentFormatHTML
		}
		if format != model.ContentFormatHTML && format != model.ContentFormatMarkdown {
			WriteError(w, http.StatusBadRequest, "Unsupported content format")
			return
		}

		page, err := h.queries.UpsertStaticPage(r.Context(), store.UpsertStaticPageParams{
			Kind:    kind,
			Title:   strings.TrimSpace(req.Title),
			Content: req.Content,
			Format:  format,
		})
		if err != nil {
			slog.Error("failed to save static page", "error", err, "kind", kind)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		slog.Info("static page updated", "category", "content", "kind", kind)
		WriteSuccess(w, http.StatusOK, staticPageToJSON(page))
	}
}

type contactInfoJSON struct {
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	WorkingHours string    `json:"workingHours"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func contactInfoToJSON(c model.ContactInfo) contactInfoJSON {
	return contactInfoJSON{
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		WorkingHours: c.WorkingHours,
		UpdatedAt:    c.UpdatedAt,
	}
}

// GetContactInfo handles GET /admin/contact-info.
func (h *PagesHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.queries.GetContactInfo(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Contact info not set")
			return
		}
		slog.Error("failed to get contact info", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, contactInfoToJSON(info))
}

type contactInfoRequest struct {
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	WorkingHours string `json:"workingHours"`
}

// PutContactInfo handles PUT /admin/contact-info.
func (h *PagesHandler) PutContactInfo(w http.ResponseWriter, r *http.Request) {
	var req contactInfoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}

	info, err := h.queries.UpsertContactInfo(r.Context(), store.UpsertContactInfoParams{
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		WorkingHours: strings.TrimSpace(req.WorkingHours),
	})
	if err != nil {
		slog.Error("failed to save contact info", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("contact info updated", "category", "content")
	WriteSuccess(w, http.StatusOK, contactInfoToJSON(info))
}
