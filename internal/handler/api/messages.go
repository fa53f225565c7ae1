// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pronimal/pronim-admin/internal/model"
	"github.com/pronimal/pronim-admin/internal/store"
	"github.com/pronimal/pronim-admin/internal/util"
)

// MessagesHandler serves the admin contact-message endpoints.
type MessagesHandler struct {
	queries *store.Queries
}

// NewMessagesHandler creates a new messages handler.
func NewMessagesHandler(db *sql.DB) *MessagesHandler {
	return &MessagesHandler{queries: store.New(db)}
}

type messageJSON struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	GdprAgreed bool      `json:"gdprAgreed"`
	IsRead     bool      `json:"isRead"`
	Country    string    `json:"country,omitempty"`
	Browser    string    `json:"browser,omitempty"`
	OS         string    `json:"os,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func messageToJSON(m model.Message) messageJSON {
	return messageJSON{
		ID:         m.ID,
		Name:       m.Name,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      util.StringFromNull(m.Phone),
		Message:    m.Message,
		GdprAgreed: m.GdprAgreed,
		IsRead:     m.IsRead,
		Country:    util.StringFromNull(m.Country),
		Browser:    util.StringFromNull(m.Browser),
		OS:         util.StringFromNull(m.OS),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type messageListResponse struct {
	Messages   []messageJSON `json:"messages"`
	Pagination Pagination    `json:"pagination"`
}

// List handles GET /admin/send-messages.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	msgs, err := h.queries.ListMessages(r.Context(), store.ListMessagesParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		slog.Error("failed to list messages", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	total, err := h.queries.CountMessages(r.Context())
	if err != nil {
		slog.Error("failed to count messages", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]messageJSON, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageToJSON(m))
	}

	WriteSuccess(w, http.StatusOK, messageListResponse{
		Messages:   out,
		Pagination: newPagination(page, limit, total),
	})
}

// Get handles GET /admin/send-messages/{id}.
func (h *MessagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	msg, err := h.queries.GetMessageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		slog.Error("failed to get message", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, messageToJSON(msg))
}

type messagePatchRequest struct {
	IsRead *bool `json:"isRead"`
}

// Patch handles PATCH /admin/send-messages/{id}, toggling the read flag.
// Setting a flag to its current value is a no-op; the call is idempotent.
func (h *MessagesHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req messagePatchRequest
	if err := decodeJSON(w, r, &req); err != nil || req.IsRead == nil {
		WriteError(w, http.StatusBadRequest, "Field isRead is required")
		return
	}

	if _, err := h.queries.GetMessageByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		slog.Error("failed to get message", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.queries.SetMessageRead(r.Context(), id, *req.IsRead); err != nil {
		slog.Error("failed to update message", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetMessageByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to reload message", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, messageToJSON(updated))
}

// Delete handles DELETE /admin/send-messages/{id}.
func (h *MessagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.queries.GetMessageByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		slog.Error("failed to get message", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.queries.DeleteMessage(r.Context(), id); err != nil {
		slog.Error("failed to delete message", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("message deleted", "category", "inbox", "id", id)
	WriteMessage(w, http.StatusOK, "Message deleted")
}
