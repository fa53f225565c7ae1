// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
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
	"github.com/mileusna/useragent"

	"github.com/pronimal/pronim-admin/internal/cache"
	"github.com/pronimal/pronim-admin/internal/geoip"
	"github.com/pronimal/pronim-admin/internal/model"
	"github.com/pronimal/pronim-admin/internal/store"
	"github.com/pronimal/pronim-admin/internal/util"
)

// ugcPolicy sanitizes stored blog markup before it leaves on the public
// surface. Admin reads return the stored markup untouched.
var ugcPolicy = bluemonday.UGCPolicy()

const blogCacheTTL = 5 * time.Minute

// PublicHandler serves the unauthenticated site endpoints: published
// blogs, newsletter signup, and the contact/request forms.
type PublicHandler struct {
	queries *store.Queries
	geo     *geoip.Lookup
	blogs   *cache.TypedCache[blogListResponse]
}

// NewPublicHandler creates a new public handler. geo may be nil when
// country lookup is disabled.
func NewPublicHandler(db *sql.DB, geo *geoip.Lookup, c cache.Cacher) *PublicHandler {
	return &PublicHandler{
		queries: store.New(db),
		geo:     geo,
		blogs:   cache.NewTypedCache[blogListResponse](c, blogCacheTTL),
	}
}

// publicBlogJSON converts a blog for the public surface: markdown is
// rendered to HTML and the result is sanitized.
func publicBlogJSON(b model.Blog) blogJSON {
	out := blogToJSON(b)
	if b.Format == model.ContentFormatMarkdown && out.Content != "" {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(out.Content), &buf); err == nil {
			out.Content = buf.String()
			out.Format = model.ContentFormatHTML
		}
	}
	out.Content = ugcPolicy.Sanitize(out.Content)
	out.Description = ugcPolicy.Sanitize(out.Description)
	return out
}

// ListBlogs handles GET /public/blogs.
func (h *PublicHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	key := fmt.Sprintf("public:blogs:%d:%d", page, limit)

	resp, err := h.blogs.GetOrSetWithTTL(r.Context(), key, blogCacheTTL, func() (*blogListResponse, error) {
		blogs, err := h.queries.ListBlogs(r.Context(), store.ListBlogsParams{
			Limit:  limit,
			Offset: (page - 1) * limit,
		})
		if err != nil {
			return nil, err
		}
		total, err := h.queries.CountBlogs(r.Context())
		if err != nil {
			return nil, err
		}

		out := make([]blogJSON, 0, len(blogs))
		for _, b := range blogs {
			out = append(out, publicBlogJSON(b))
		}
		return &blogListResponse{Blogs: out, Pagination: newPagination(page, limit, total)}, nil
	})
	if err != nil {
		slog.Error("failed to list public blogs", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// GetBlog handles GET /public/blogs/{id}.
func (h *PublicHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	blog, err := h.queries.GetBlogByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, http.StatusNotFound, "Blog not found")
			return
		}
		slog.Error("failed to get blog", "error", err, "id", id)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteSuccess(w, http.StatusOK, publicBlogJSON(blog))
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /public/newsletter/subscribe.
func (h *PublicHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		WriteError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	existing, err := h.queries.GetSubscriberByEmail(r.Context(), email)
	switch {
	case err == nil:
		if existing.Subscribed {
			WriteMessage(w, http.StatusOK, "Already subscribed")
			return
		}
		if err := h.queries.UpdateSubscriberStatus(r.Context(), existing.ID, true); err != nil {
			slog.Error("failed to resubscribe", "error", err, "email", email)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		WriteMessage(w, http.StatusOK, "Subscribed")
		return
	case !errors.Is(err, sql.ErrNoRows):
		slog.Error("failed to look up subscriber", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	_, err = h.queries.CreateSubscriber(r.Context(), store.CreateSubscriberParams{
		ID:         uuid.NewString(),
		Email:      email,
		Subscribed: true,
	})
	if err != nil {
		slog.Error("failed to create subscriber", "error", err, "email", email)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("newsletter signup", "category", "inbox", "email", email)
	WriteMessage(w, http.StatusCreated, "Subscribed")
}

// submissionTags derives country/browser/OS metadata from the request.
func (h *PublicHandler) submissionTags(r *http.Request) (country, browser, os sql.NullString) {
	if h.geo != nil {
		if cc := h.geo.LookupCountry(util.ClientIP(r)); cc != "" {
			country = util.NullStringFromValue(cc)
		}
	}
	ua := useragent.Parse(r.UserAgent())
	if ua.Name != "" {
		browser = util.NullStringFromValue(ua.Name)
	}
	if ua.OS != "" {
		os = util.NullStringFromValue(ua.OS)
	}
	return country, browser, os
}

type contactRequest struct {
	Name       string `json:"name"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	GdprAgreed bool   `json:"gdprAgreed"`
}

// Contact handles POST /public/contact.
func (h *PublicHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case strings.TrimSpace(req.Name) == "":
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	case strings.TrimSpace(req.Email) == "":
		WriteError(w, http.StatusBadRequest, "Email is required")
		return
	case strings.TrimSpace(req.Message) == "":
		WriteError(w, http.StatusBadRequest, "Message is required")
		return
	case !req.GdprAgreed:
		WriteError(w, http.StatusBadRequest, "GDPR consent is required")
		return
	}

	country, browser, os := h.submissionTags(r)
	_, err := h.queries.CreateMessage(r.Context(), store.CreateMessageParams{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.TrimSpace(req.Email),
		Phone:      util.NullStringFromValue(strings.TrimSpace(req.Phone)),
		Message:    strings.TrimSpace(req.Message),
		GdprAgreed: req.GdprAgreed,
		Country:    country,
		Browser:    browser,
		OS:         os,
	})
	if err != nil {
		slog.Error("failed to store contact message", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("contact message received", "category", "inbox", "email", req.Email)
	WriteMessage(w, http.StatusCreated, "Message sent")
}

type enquiryRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Message       string `json:"message"`
	ConsentAgreed bool   `json:"consentAgreed"`
}

// Enquiry handles POST /public/enquiries.
func (h *PublicHandler) Enquiry(w http.ResponseWriter, r *http.Request) {
	var req enquiryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case strings.TrimSpace(req.Name) == "":
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	case strings.TrimSpace(req.Email) == "":
		WriteError(w, http.StatusBadRequest, "Email is required")
		return
	case strings.TrimSpace(req.Message) == "":
		WriteError(w, http.StatusBadRequest, "Message is required")
		return
	case !req.ConsentAgreed:
		WriteError(w, http.StatusBadRequest, "Consent is required")
		return
	}

	country, browser, os := h.submissionTags(r)
	_, err := h.queries.CreateEnquiry(r.Context(), store.CreateEnquiryParams{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         util.NullStringFromValue(strings.TrimSpace(req.Phone)),
		Message:       strings.TrimSpace(req.Message),
		ConsentAgreed: req.ConsentAgreed,
		Country:       country,
		Browser:       browser,
		OS:            os,
	})
	if err != nil {
		slog.Error("failed to store enquiry", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("enquiry received", "category", "inbox", "email", req.Email)
	WriteMessage(w, http.StatusCreated, "Request sent")
}
