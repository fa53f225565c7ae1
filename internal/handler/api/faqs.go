// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pronimal/pronim-admin/internal/model"
	"github.com/pronimal/pronim-admin/internal/store"
)

// FaqsHandler serves the admin FAQ endpoints.
type FaqsHandler struct {
	queries *store.Queries
}

// NewFaqsHandler creates a new FAQs handler.
func NewFaqsHandler(db *sql.DB) *FaqsHandler {
	return &FaqsHandler{queries: store.New(db)}
}

type faqJSON struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Order     int64     `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func faqToJSON(f model.Faq) faqJSON {
	return faqJSON{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		Order:     f.Position,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

type faqListResponse struct {
	Faqs       []faqJSON  `json:"faqs"`
	Pagination Pagination `json:"pagination"`
}

// List handles GET /admin/faqs with an optional category filter.
func (h *FaqsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	page, limit := parsePagination(r)
	window := store.ListFaqsParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	var (
		faqs  []model.Faq
		total int64
		err   error
	)
	if category != "" {
		if !model.IsValidFaqCategory(category) {
			WriteError(w, http.StatusBadRequest, "Unknown FAQ category")
			return
		}
		if faqs, err = h.queries.ListFaqsByCategory(r.Context(), category, window); err == nil {
			total, err = h.queries.CountFaqsByCategory(r.Context(), category)
		}
	} else {
		if faqs, err = h.queries.ListFaqs(r.Context(), window); err == nil {
			total, err = h.queries.CountFaqs(r.Context())
		}
	}
	if err != nil {
		slog.Error("failed to list faqs", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]faqJSON, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, faqToJSON(f))
	}

	WriteSuccess(w, http.StatusOK, faqListResponse{
		Faqs:       out,
		Pagination: newPagination(page, limit, total),
	})
}

// Get handles GET /admin/faqs/{id}.
func (h *FaqsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	faq, err := h.queries.GetFaqByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "FAQ not found")
			return
		}
		slog.Error("failed to get faq", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, faqToJSON(faq))
}

type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    *int64 `json:"order"`
}

func (req *faqRequest) validate() string {
	if strings.TrimSpace(req.Question) == "" {
		return "Question is required"
	}
	if isBlankMarkup(req.Answer) {
		return "Answer is required"
	}
	if req.Category != "" && !model.IsValidFaqCategory(req.Category) {
		return "Unknown FAQ category"
	}
	return ""
}

// Create handles POST /admin/faqs. New entries without an explicit order
// are appended to the end of their category.
func (h *FaqsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req faqRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	category := req.Category
	if category == "" {
		category = model.FaqCategoryGeneral
	}

	position := int64(0)
	if req.Order != nil {
		position = *req.Order
	} else {
		maxPos, err := h.queries.GetMaxFaqPosition(r.Context(), category)
		if err != nil {
			slog.Error("failed to get max faq position", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		position = maxPos + 1
	}

	faq, err := h.queries.CreateFaq(r.Context(), store.CreateFaqParams{
		ID:       uuid.NewString(),
		Question: strings.TrimSpace(req.Question),
		Answer:   req.Answer,
		Category: category,
		Position: position,
	})
	if err != nil {
		slog.Error("failed to create faq", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("faq created", "category", "content", "id", faq.ID)
	WriteSuccess(w, http.StatusCreated, faqToJSON(faq))
}

// Update handles PUT /admin/faqs/{id}.
func (h *FaqsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := h.queries.GetFaqByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "FAQ not found")
			return
		}
		slog.Error("failed to get faq", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req faqRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	category := req.Category
	if category == "" {
		category = existing.Category
	}

	position := existing.Position
	if req.Order != nil {
		position = *req.Order
	}

	err = h.queries.UpdateFaq(r.Context(), store.UpdateFaqParams{
		ID:       id,
		Question: strings.TrimSpace(req.Question),
		Answer:   req.Answer,
		Category: category,
		Position: position,
	})
	if err != nil {
		slog.Error("failed to update faq", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetFaqByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to reload faq", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, faqToJSON(updated))
}

// Delete handles DELETE /admin/faqs/{id}.
func (h *FaqsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.queries.GetFaqByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "FAQ not found")
			return
		}
		slog.Error("failed to get faq", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.queries.DeleteFaq(r.Context(), id); err != nil {
		slog.Error("failed to delete faq", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("faq deleted", "category", "content", "id", id)
	WriteMessage(w, http.StatusOK, "FAQ deleted")
}
