// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/pronimal/pronim-admin/internal/cache"
	"github.com/pronimal/pronim-admin/internal/store"
)

// statsCacheTTL keeps dashboard counters fresh enough without hitting
// the database on every page load.
const statsCacheTTL = 30 * time.Second

type newsletterStats struct {
	Total      int64 `json:"total"`
	Subscribed int64 `json:"subscribed"`
}

type contactStats struct {
	Total   int64 `json:"total"`
	Read    int64 `json:"read"`
	Pending int64 `json:"pending"`
}

type totalStats struct {
	Total int64 `json:"total"`
}

type statsResponse struct {
	Newsletter newsletterStats `json:"newsletter"`
	Contact    contactStats    `json:"contact"`
	Enquiry    totalStats      `json:"enquiry"`
	Blog       totalStats      `json:"blog"`
	Faq        totalStats      `json:"faq"`
}

// StatsHandler serves the aggregated dashboard counters.
type StatsHandler struct {
	queries *store.Queries
	cache   *cache.TypedCache[statsResponse]
}

// NewStatsHandler creates a new stats handler backed by the given cache.
func NewStatsHandler(db *sql.DB, c cache.Cacher) *StatsHandler {
	return &StatsHandler{
		queries: store.New(db),
		cache:   cache.NewTypedCache[statsResponse](c, statsCacheTTL),
	}
}

// Get handles GET /admin/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.cache.GetOrSetWithTTL(r.Context(), "stats:dashboard", statsCacheTTL, func() (*statsResponse, error) {
		return h.collect(r.Context())
	})
	if err != nil {
		slog.Error("failed to collect stats", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, stats)
}

func (h *StatsHandler) collect(ctx context.Context) (*statsResponse, error) {
	var out statsResponse

	counters := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&out.Newsletter.Total, h.queries.CountSubscribers},
		{&out.Newsletter.Subscribed, h.queries.CountSubscribedSubscribers},
		{&out.Contact.Total, h.queries.CountMessages},
		{&out.Contact.Pending, h.queries.CountUnreadMessages},
		{&out.Enquiry.Total, h.queries.CountEnquiries},
		{&out.Blog.Total, h.queries.CountBlogs},
		{&out.Faq.Total, h.queries.CountFaqs},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	out.Contact.Read = out.Contact.Total - out.Contact.Pending

	return &out, nil
}
