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
)

// NewslettersHandler serves the admin newsletter subscriber endpoints.
type NewslettersHandler struct {
	queries *store.Queries
}

// NewNewslettersHandler creates a new newsletters handler.
func NewNewslettersHandler(db *sql.DB) *NewslettersHandler {
	return &NewslettersHandler{queries: store.New(db)}
}

type subscriberJSON struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Subscribed bool      `json:"subscribed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func subscriberToJSON(s model.Subscriber) subscriberJSON {
	return subscriberJSON{
		ID:         s.ID,
		Email:      s.Email,
		Subscribed: s.Subscribed,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

type subscriberListResponse struct {
	Newsletters []subscriberJSON `json:"newsletters"`
	Pagination  Pagination       `json:"pagination"`
}

// List handles GET /admin/newsletters. An optional subscribed query
// parameter filters by subscription state.
func (h *NewslettersHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	subs, err := h.queries.ListSubscribers(r.Context(), store.ListSubscribersParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		slog.Error("failed to list subscribers", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	total, err := h.queries.CountSubscribers(r.Context())
	if err != nil {
		slog.Error("failed to count subscribers", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	filter := r.URL.Query().Get("subscribed")
	out := make([]subscriberJSON, 0, len(subs))
	for _, s := range subs {
		if filter == "true" && !s.Subscribed {
			continue
		}
		if filter == "false" && s.Subscribed {
			continue
		}
		out = append(out, subscriberToJSON(s))
	}

	WriteSuccess(w, http.StatusOK, subscriberListResponse{
		Newsletters: out,
		Pagination:  newPagination(page, limit, total),
	})
}

type subscriberPatchRequest struct {
	Subscribed *bool `json:"subscribed"`
}

// Patch handles PATCH /admin/newsletters/{id}, toggling the subscription
// state. Idempotent.
func (h *NewslettersHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req subscriberPatchRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Subscribed == nil {
		WriteError(w, http.StatusBadRequest, "Field subscribed is required")
		return
	}

	if _, err := h.queries.GetSubscriberByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Subscriber not found")
			return
		}
		slog.Error("failed to get subscriber", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.queries.UpdateSubscriberStatus(r.Context(), id, *req.Subscribed); err != nil {
		slog.Error("failed to update subscriber", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetSubscriberByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to reload subscriber", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, subscriberToJSON(updated))
}

// Delete handles DELETE /admin/newsletters/{id}.
func (h *NewslettersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.queries.GetSubscriberByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Subscriber not found")
			return
		}
		slog.Error("failed to get subscriber", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.queries.DeleteSubscriber(r.Context(), id); err != nil {
		slog.Error("failed to delete subscriber", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("subscriber deleted", "category", "inbox", "id", id)
	WriteMessage(w, http.StatusOK, "Subscriber deleted")
}
