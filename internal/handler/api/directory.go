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

// DirectoryHandler serves the banner, agent, agency, and owner CRUD
// endpoints. These collections are small, so lists are unpaginated.
type DirectoryHandler struct {
	queries *store.Queries
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(db *sql.DB) *DirectoryHandler {
	return &DirectoryHandler{queries: store.New(db)}
}

// notFound maps sql.ErrNoRows to a 404 with the given message and logs
// anything else. Returns true when an error response was written.
func notFound(w http.ResponseWriter, err error, message string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrNoRows) {
		WriteError(w, http.StatusNotFound, message)
		return true
	}
	slog.Error("query failed", "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error")
	return true
}

// Banners

type bannerJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func bannerToJSON(b model.Banner) bannerJSON {
	return bannerJSON{
		ID: b.ID, Title: b.Title, ImageURL: b.ImageURL, Position: b.Position,
		CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

type bannerRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Position string `json:"position"`
}

func (req *bannerRequest) validate() string {
	if strings.TrimSpace(req.Title) == "" {
		return "Title is required"
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return "Image is required"
	}
	return ""
}

// ListBanners handles GET /admin/banners.
func (h *DirectoryHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.queries.ListBanners(r.Context())
	if err != nil {
		slog.Error("failed to list banners", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]bannerJSON, 0, len(banners))
	for _, b := range banners {
		out = append(out, bannerToJSON(b))
	}
	WriteSuccess(w, http.StatusOK, map[string]any{"banners": out})
}

// CreateBanner handles POST /admin/banners.
func (h *DirectoryHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	banner, err := h.queries.CreateBanner(r.Context(), store.CreateBannerParams{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(req.Title),
		ImageURL: strings.TrimSpace(req.ImageURL),
		Position: strings.TrimSpace(req.Position),
	})
	if err != nil {
		slog.Error("failed to create banner", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusCreated, bannerToJSON(banner))
}

// UpdateBanner handles PUT /admin/banners/{id}.
func (h *DirectoryHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.queries.GetBannerByID(r.Context(), id); notFound(w, err, "Banner not found") {
		return
	}

	var req bannerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	err := h.queries.UpdateBanner(r.Context(), store.UpdateBannerParams{
		ID:       id,
		Title:    strings.TrimSpace(req.Title),
		ImageURL: strings.TrimSpace(req.ImageURL),
		Position: strings.TrimSpace(req.Position),
	})
	if err != nil {
		slog.Error("failed to update banner", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetBannerByID(r.Context(), id)
	if notFound(w, err, "Banner not found") {
		return
	}
	WriteSuccess(w, http.StatusOK, bannerToJSON(updated))
}

// DeleteBanner handles DELETE /admin/banners/{id}.
func (h *DirectoryHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.queries.GetBannerByID(r.Context(), id); notFound(w, err, "Banner not found") {
		return
	}

	if err := h.queries.DeleteBanner(r.Context(), id); err != nil {
		slog.Error("failed to delete banner", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteMessage(w, http.StatusOK, "Banner deleted")
}

// Agents

type agentJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Agency    string    `json:"agency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func agentToJSON(a model.Agent) agentJSON {
	return agentJSON{
		ID: a.ID, Name: a.Name, Email: a.Email, Agency: a.Agency,
		Status: a.Status, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
	}
}

type agentRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Agency string `json:"agency"`
	Status string `json:"status"`
}

func (req *agentRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "Name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		return "Email is required"
	}
	if req.Status != "" && req.Status != model.AgentStatusActive && req.Status != model.AgentStatusInactive {
		return "Status must be Active or Inactive"
	}
	return ""
}

// ListAgents handles GET /admin/agents.
func (h *DirectoryHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.queries.ListAgents(r.Context())
	if err != nil {
		slog.Error("failed to list agents", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]agentJSON, 0, len(agents))
	for _, a := range agents {
		out = append(out, agentToJSON(a))
	}
	WriteSuccess(w, http.StatusOK, map[string]any{"agents": out})
}

// CreateAgent handles POST /admin/agents.
func (h *DirectoryHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req agentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	status := req.Status
	if status == "" {
		status = model.AgentStatusActive
	}

	agent, err := h.queries.CreateAgent(r.Context(), store.CreateAgentParams{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Agency: strings.TrimSpace(req.Agency),
		Status: status,
	})
	if err != nil {
		slog.Error("failed to create agent", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusCreated, agentToJSON(agent))
}

// UpdateAgent handles PUT /admin/agents/{id}.
func (h *DirectoryHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.queries.GetAgentByID(r.Context(), id)
	if notFound(w, err, "Agent not found") {
		return
	}

	var req agentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	status := req.Status
	if status == "" {
		status = existing.Status
	}

	err = h.queries.UpdateAgent(r.Context(), store.UpdateAgentParams{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Agency: strings.TrimSpace(req.Agency),
		Status: status,
	})
	if err != nil {
		slog.Error("failed to update agent", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetAgentByID(r.Context(), id)
	if notFound(w, err, "Agent not found") {
		return
	}
	WriteSuccess(w, http.StatusOK, agentToJSON(updated))
}

// DeleteAgent handles DELETE /admin/agents/{id}.
func (h *DirectoryHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.queries.GetAgentByID(r.Context(), id); notFound(w, err, "Agent not found") {
		return
	}

	if err := h.queries.DeleteAgent(r.Context(), id); err != nil {
		slog.Error("failed to delete agent", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteMessage(w, http.StatusOK, "Agent deleted")
}

// Agencies

type agencyJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Category  string    `json:"category"`
	Employees int64     `json:"employees"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func agencyToJSON(a model.Agency) agencyJSON {
	return agencyJSON{
		ID: a.ID, Name: a.Name, Location: a.Location, Category: a.Category,
		Employees: a.Employees, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
	}
}

type agencyRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Category  string `json:"category"`
	Employees int64  `json:"employees"`
}

// ListAgencies handles GET /admin/agencies.
func (h *DirectoryHandler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.queries.ListAgencies(r.Context())
	if err != nil {
		slog.Error("failed to list agencies", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]agencyJSON, 0, len(agencies))
	for _, a := range agencies {
		out = append(out, agencyToJSON(a))
	}
	WriteSuccess(w, http.StatusOK, map[string]any{"agencies": out})
}

// CreateAgency handles POST /admin/agencies.
func (h *DirectoryHandler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	var req agencyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}

	agency, err := h.queries.CreateAgency(r.Context(), store.CreateAgencyParams{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Location:  strings.TrimSpace(req.Location),
		Category:  strings.TrimSpace(req.Category),
		Employees: req.Employees,
	})
	if err != nil {
		slog.Error("failed to create agency", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusCreated, agencyToJSON(agency))
}

// UpdateAgency handles PUT /admin/agencies/{id}.
func (h *DirectoryHandler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.queries.GetAgencyByID(r.Context(), id); notFound(w, err, "Agency not found") {
		return
	}

	var req agencyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}

	err := h.queries.UpdateAgency(r.Context(), store.UpdateAgencyParams{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Location:  strings.TrimSpace(req.Location),
		Category:  strings.TrimSpace(req.Category),
		Employees: req.Employees,
	})
	if err != nil {
		slog.Error("failed to update agency", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetAgencyByID(r.Context(), id)
	if notFound(w, err, "Agency not found") {
		return
	}
	WriteSuccess(w, http.StatusOK, agencyToJSON(updated))
}

// DeleteAgency handles DELETE /admin/agencies/{id}.
func (h *DirectoryHandler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.queries.GetAgencyByID(r.Context(), id); notFound(w, err, "Agency not found") {
		return
	}

	if err := h.queries.DeleteAgency(r.Context(), id); err != nil {
		slog.Error("failed to delete agency", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteMessage(w, http.StatusOK, "Agency deleted")
}

// Owners

type ownerJSON struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Properties int64     `json:"properties"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ownerToJSON(o model.Owner) ownerJSON {
	return ownerJSON{
		ID: o.ID, Name: o.Name, Email: o.Email, Properties: o.Properties,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
	}
}

type ownerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Properties int64  `json:"properties"`
}

func (req *ownerRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "Name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		return "Email is required"
	}
	return ""
}

// ListOwners handles GET /admin/owners.
func (h *DirectoryHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.queries.ListOwners(r.Context())
	if err != nil {
		slog.Error("failed to list owners", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]ownerJSON, 0, len(owners))
	for _, o := range owners {
		out = append(out, ownerToJSON(o))
	}
	WriteSuccess(w, http.StatusOK, map[string]any{"owners": out})
}

// CreateOwner handles POST /admin/owners.
func (h *DirectoryHandler) CreateOwner(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	owner, err := h.queries.CreateOwner(r.Context(), store.CreateOwnerParams{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Properties: req.Properties,
	})
	if err != nil {
		slog.Error("failed to create owner", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusCreated, ownerToJSON(owner))
}

// UpdateOwner handles PUT /admin/owners/{id}.
func (h *DirectoryHandler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.queries.GetOwnerByID(r.Context(), id); notFound(w, err, "Owner not found") {
		return
	}

	var req ownerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	err := h.queries.UpdateOwner(r.Context(), store.UpdateOwnerParams{
		ID:         id,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Properties: req.Properties,
	})
	if err != nil {
		slog.Error("failed to update owner", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.queries.GetOwnerByID(r.Context(), id)
	if notFound(w, err, "Owner not found") {
		return
	}
	WriteSuccess(w, http.StatusOK, ownerToJSON(updated))
}

// DeleteOwner handles DELETE /admin/owners/{id}.
func (h *DirectoryHandler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.queries.GetOwnerByID(r.Context(), id); notFound(w, err, "Owner not found") {
		return
	}

	if err := h.queries.DeleteOwner(r.Context(), id); err != nil {
		slog.Error("failed to delete owner", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteMessage(w, http.StatusOK, "Owner deleted")
}
