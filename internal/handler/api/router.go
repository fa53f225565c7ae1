// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pronimal/pronim-admin/internal/auth"
	"github.com/pronimal/pronim-admin/internal/cache"
	"github.com/pronimal/pronim-admin/internal/geoip"
	"github.com/pronimal/pronim-admin/internal/imaging"
	"github.com/pronimal/pronim-admin/internal/middleware"
	"github.com/pronimal/pronim-admin/internal/model"
)

// RouterConfig bundles everything the HTTP surface depends on.
type RouterConfig struct {
	DB          *sql.DB
	Tokens      *auth.TokenManager
	Cache       cache.Cacher
	Geo         *geoip.Lookup
	Processor   *imaging.Processor
	Protection  *middleware.LoginProtection
	RateLimiter *middleware.GlobalRateLimiter
	Security    middleware.SecurityHeadersConfig
	UploadsDir  string
}

// NewRouter assembles the full route tree: the public site API, the
// authenticated admin API, and static serving of uploaded images.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.SecurityHeaders(cfg.Security))

	public := NewPublicHandler(cfg.DB, cfg.Geo, cfg.Cache)
	authH := NewAuthHandler(cfg.DB, cfg.Tokens, cfg.Protection)
	blogs := NewBlogsHandler(cfg.DB, cfg.Processor)
	newsletters := NewNewslettersHandler(cfg.DB)
	messages := NewMessagesHandler(cfg.DB)
	enquiries := NewEnquiriesHandler(cfg.DB)
	faqs := NewFaqsHandler(cfg.DB)
	pages := NewPagesHandler(cfg.DB)
	directory := NewDirectoryHandler(cfg.DB)
	stats := NewStatsHandler(cfg.DB, cfg.Cache)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/public", func(r chi.Router) {
			r.Get("/blogs", public.ListBlogs)
			r.Get("/blogs/{id}", public.GetBlog)

			// Form submissions get a per-IP limiter on top of the
			// global middleware stack.
			r.Group(func(r chi.Router) {
				if cfg.RateLimiter != nil {
					r.Use(cfg.RateLimiter.Middleware())
				}
				r.Post("/newsletter/subscribe", public.Subscribe)
				r.Post("/contact", public.Contact)
				r.Post("/enquiries", public.Enquiry)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if cfg.Protection != nil {
					r.Use(cfg.Protection.Middleware())
				}
				r.Post("/login", authH.Login)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.BearerAuth(cfg.Tokens))

				r.Get("/verify", authH.Verify)
				r.Get("/stats", stats.Get)

				r.Route("/blogs", func(r chi.Router) {
					r.Get("/", blogs.List)
					r.Post("/", blogs.Create)
					r.Post("/upload-image", blogs.UploadImage)
					r.Get("/{id}", blogs.Get)
					r.Put("/{id}", blogs.Update)
					r.Delete("/{id}", blogs.Delete)
				})

				r.Route("/newsletters", func(r chi.Router) {
					r.Get("/", newsletters.List)
					r.Patch("/{id}", newsletters.Patch)
					r.Delete("/{id}", newsletters.Delete)
				})

				r.Route("/send-messages", func(r chi.Router) {
					r.Get("/", messages.List)
					r.Get("/{id}", messages.Get)
					r.Patch("/{id}", messages.Patch)
					r.Delete("/{id}", messages.Delete)
				})

				r.Route("/request-forms", func(r chi.Router) {
					r.Get("/", enquiries.List)
					r.Delete("/{id}", enquiries.Delete)
				})

				r.Route("/faqs", func(r chi.Router) {
					r.Get("/", faqs.List)
					r.Post("/", faqs.Create)
					r.Get("/{id}", faqs.Get)
					r.Put("/{id}", faqs.Update)
					r.Delete("/{id}", faqs.Delete)
				})

				r.Get("/privacy-policy", pages.GetPage(model.PageKindPrivacy))
				r.Put("/privacy-policy", pages.PutPage(model.PageKindPrivacy))
				r.Get("/terms-and-conditions", pages.GetPage(model.PageKindTerms))
				r.Put("/terms-and-conditions", pages.PutPage(model.PageKindTerms))

				r.Get("/contact-info", pages.GetContactInfo)
				r.Put("/contact-info", pages.PutContactInfo)

				r.Route("/banners", func(r chi.Router) {
					r.Get("/", directory.ListBanners)
					r.Post("/", directory.CreateBanner)
					r.Put("/{id}", directory.UpdateBanner)
					r.Delete("/{id}", directory.DeleteBanner)
				})

				r.Route("/agents", func(r chi.Router) {
					r.Get("/", directory.ListAgents)
					r.Post("/", directory.CreateAgent)
					r.Put("/{id}", directory.UpdateAgent)
					r.Delete("/{id}", directory.DeleteAgent)
				})

				r.Route("/agencies", func(r chi.Router) {
					r.Get("/", directory.ListAgencies)
					r.Post("/", directory.CreateAgency)
					r.Put("/{id}", directory.UpdateAgency)
					r.Delete("/{id}", directory.DeleteAgency)
				})

				r.Route("/owners", func(r chi.Router) {
					r.Get("/", directory.ListOwners)
					r.Post("/", directory.CreateOwner)
					r.Put("/{id}", directory.UpdateOwner)
					r.Delete("/{id}", directory.DeleteOwner)
				})
			})
		})
	})

	if cfg.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
			fs.ServeHTTP(w, req)
		})
	}

	return r
}
