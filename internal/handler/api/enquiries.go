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

// EnquiriesHandler serves the admin request-form endpoints.
type EnquiriesHandler struct {
	queries *store.Queries
}

// NewEnquiriesHandler creates a new enquiries handler.
func NewEnquiriesHandler(db *sql.DB) *EnquiriesHandler {
	return &EnquiriesHandler{queries: store.New(db)}
}

type enquiryJSON struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Message       string    `json:"message"`
	ConsentAgreed bool      `json:"consentAgreed"`
	Country       string    `json:"country,omitempty"`
	Browser       string    `json:"browser,omitempty"`
	OS            string    `json:"os,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func enquiryToJSON(e model.Enquiry) enquiryJSON {
	return enquiryJSON{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         util.StringFromNull(e.Phone),
		Message:       e.Message,
		ConsentAgreed: e.ConsentAgreed,
		Country:       util.StringFromNull(e.Country),
		Browser:       util.StringFromNull(e.Browser),
		OS:            util.StringFromNull(e.OS),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type enquiryListResponse struct {
	Enquiries  []enquiryJSON `json:"enquiries"`
	Pagination Pagination    `json:"pagination"`
}

// List handles GET /admin/request-forms.
func (h *EnquiriesHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	enquiries, err := h.queries.ListEnquiries(r.Context(), store.ListEnquiriesParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		slog.Error("failed to list enquiries", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	total, err := h.queries.CountEnquiries(r.Context())
	if err != nil {
		slog.Error("failed to count enquiries", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]enquiryJSON, 0, len(enquiries))
	for _, e := range enquiries {
		out = append(out, enquiryToJSON(e))
	}

	WriteSuccess(w, http.StatusOK, enquiryListResponse{
		Enquiries:  out,
		Pagination: newPagination(page, limit, total),
	})
}

// Delete handles DELETE /admin/request-forms/{id}.
func (h *EnquiriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.queries.GetEnquiryByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Request form not found")
			return
		}
		slog.Error("failed to get enquiry", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.queries.DeleteEnquiry(r.Context(), id); err != nil {
		slog.Error("failed to delete enquiry", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("enquiry deleted", "category", "inbox", "id", id)
	WriteMessage(w, http.StatusOK, "Request form deleted")
}
