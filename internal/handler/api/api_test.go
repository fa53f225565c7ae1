// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/pronimal/pronim-admin/internal/auth"
	"github.com/pronimal/pronim-admin/internal/cache"
	"github.com/pronimal/pronim-admin/internal/imaging"
	"github.com/pronimal/pronim-admin/internal/middleware"
	"github.com/pronimal/pronim-admin/internal/store"
)

const (
	testJWTSecret     = "0123456789abcdef0123456789abcdef"
	testAdminPassword = "test-Password-123"
)

type testEnv struct {
	handler http.Handler
	db      *sql.DB
}

// newTestEnv builds the full route tree against a migrated temporary
// database with a seeded admin account. Rate limits are set high enough
// to never interfere.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	db, err := store.NewDB(filepath.Join(dir, "api-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := store.Seed(context.Background(), db, store.SeedParams{
		AdminUsername: "admin",
		AdminEmail:    "admin@pronim.al",
		AdminPassword: testAdminPassword,
	}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	mem := cache.NewSimpleMemoryCache(time.Minute)
	t.Cleanup(func() { mem.Close() })

	handler := NewRouter(RouterConfig{
		DB:        db,
		Tokens:    auth.NewTokenManager(testJWTSecret, time.Hour),
		Cache:     mem,
		Processor: imaging.NewProcessor(filepath.Join(dir, "uploads")),
		Protection: middleware.NewLoginProtection(middleware.LoginProtectionConfig{
			IPRateLimit:       1000,
			IPBurst:           1000,
			MaxFailedAttempts: 100,
			LockoutDuration:   time.Minute,
			AttemptWindow:     time.Minute,
		}),
		RateLimiter: middleware.NewGlobalRateLimiter(1000, 1000),
		Security:    middleware.DefaultSecurityHeadersConfig(true),
	})

	return &testEnv{handler: handler, db: db}
}

type response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do runs a request through the router and decodes the envelope.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "203.0.113.10:4000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, resp
}

// login authenticates the seeded admin and returns the bearer token.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	code, resp := e.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"identifier": "admin",
		"password":   testAdminPassword,
	})
	if code != http.StatusOK {
		t.Fatalf("login: status = %d, message = %q", code, resp.Message)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decoding login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned empty token")
	}
	return data.Token
}

func decodeData(t *testing.T, resp response, dst any) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, dst); err != nil {
		t.Fatalf("decoding data %q: %v", resp.Data, err)
	}
}

func TestLoginAndVerify(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodGet, "/api/v1/admin/verify", token, nil)
	if code != http.StatusOK {
		t.Fatalf("verify: status = %d", code)
	}
	var data struct {
		Username string `json:"username"`
	}
	decodeData(t, resp, &data)
	if data.Username != "admin" {
		t.Errorf("username = %q, want admin", data.Username)
	}
}

func TestLoginByEmail(t *testing.T) {
	env := newTestEnv(t)

	code, _ := env.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"identifier": "admin@pronim.al",
		"password":   testAdminPassword,
	})
	if code != http.StatusOK {
		t.Errorf("login by email: status = %d, want 200", code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"identifier": "admin",
		"password":   "wrong",
	})
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
	if resp.Message != "Invalid credentials" {
		t.Errorf("message = %q", resp.Message)
	}

	// Unknown accounts get the same response as wrong passwords.
	code, resp = env.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"identifier": "ghost",
		"password":   "whatever",
	})
	if code != http.StatusUnauthorized || resp.Message != "Invalid credentials" {
		t.Errorf("unknown user: status = %d, message = %q", code, resp.Message)
	}

	code, _ = env.do(t, http.MethodPost, "/api/v1/admin/login", "", map[string]string{
		"identifier": "",
		"password":   "",
	})
	if code != http.StatusBadRequest {
		t.Errorf("empty fields: status = %d, want 400", code)
	}
}

func TestLoginAccountLockout(t *testing.T) {
	env := newTestEnv(t)

	// A dedicated handler with a tight lockout config.
	lp := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit:       1000,
		IPBurst:           1000,
		MaxFailedAttempts: 2,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})
	h := NewAuthHandler(env.db, auth.NewTokenManager(testJWTSecret, time.Hour), lp)

	attempt := func(password string) (int, response) {
		body, _ := json.Marshal(map[string]string{"identifier": "admin", "password": password})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		var resp response
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		return rec.Code, resp
	}

	if code, _ := attempt("wrong"); code != http.StatusUnauthorized {
		t.Fatalf("first failure: status = %d, want 401", code)
	}
	if code, _ := attempt("wrong"); code != http.StatusTooManyRequests {
		t.Fatalf("locking failure: status = %d, want 429", code)
	}

	// Even correct credentials are refused while locked.
	if code, _ := attempt(testAdminPassword); code != http.StatusTooManyRequests {
		t.Errorf("locked login: status = %d, want 429", code)
	}
}

func TestAdminRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	paths := []string{
		"/api/v1/admin/stats",
		"/api/v1/admin/blogs/",
		"/api/v1/admin/faqs/",
		"/api/v1/admin/banners/",
	}
	for _, path := range paths {
		code, resp := env.do(t, http.MethodGet, path, "", nil)
		if code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, code)
		}
		if resp.Success {
			t.Errorf("%s: success = true on auth failure", path)
		}
	}
}

type faqData struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int64  `json:"order"`
}

func TestFaqLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	// Entries without an explicit order append to their category.
	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/faqs/", token, map[string]any{
		"question": "Test?",
		"answer":   "<p>An answer.</p>",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: status = %d, message = %q", code, resp.Message)
	}
	var first faqData
	decodeData(t, resp, &first)
	if first.Category != "general" {
		t.Errorf("default category = %q, want general", first.Category)
	}
	if first.Order != 1 {
		t.Errorf("first order = %d, want 1", first.Order)
	}

	code, resp = env.do(t, http.MethodPost, "/api/v1/admin/faqs/", token, map[string]any{
		"question": "Second?",
		"answer":   "<p>Also an answer.</p>",
		"category": "general",
	})
	if code != http.StatusCreated {
		t.Fatalf("create second: status = %d", code)
	}
	var second faqData
	decodeData(t, resp, &second)
	if second.Order != 2 {
		t.Errorf("second order = %d, want 2", second.Order)
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/faqs/", token, nil)
	if code != http.StatusOK {
		t.Fatalf("list: status = %d", code)
	}
	var list struct {
		Faqs []faqData `json:"faqs"`
	}
	decodeData(t, resp, &list)
	if len(list.Faqs) != 2 {
		t.Fatalf("list length = %d, want 2", len(list.Faqs))
	}

	code, resp = env.do(t, http.MethodPut, "/api/v1/admin/faqs/"+first.ID, token, map[string]any{
		"question": "Updated?",
		"answer":   "<p>An answer.</p>",
	})
	if code != http.StatusOK {
		t.Fatalf("update: status = %d, message = %q", code, resp.Message)
	}
	var updated faqData
	decodeData(t, resp, &updated)
	if updated.Question != "Updated?" {
		t.Errorf("question = %q", updated.Question)
	}
	if updated.Order != 1 {
		t.Errorf("order after update = %d, want 1", updated.Order)
	}

	code, resp = env.do(t, http.MethodDelete, "/api/v1/admin/faqs/"+first.ID, token, nil)
	if code != http.StatusOK || resp.Message != "FAQ deleted" {
		t.Fatalf("delete: status = %d, message = %q", code, resp.Message)
	}
	code, _ = env.do(t, http.MethodGet, "/api/v1/admin/faqs/"+first.ID, token, nil)
	if code != http.StatusNotFound {
		t.Errorf("get deleted: status = %d, want 404", code)
	}
}

func TestFaqListPagination(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	questions := []string{"First?", "Second?", "Third?"}
	for _, q := range questions {
		code, resp := env.do(t, http.MethodPost, "/api/v1/admin/faqs/", token, map[string]any{
			"question": q,
			"answer":   "<p>An answer.</p>",
		})
		if code != http.StatusCreated {
			t.Fatalf("create %q: status = %d, message = %q", q, code, resp.Message)
		}
	}
	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/faqs/", token, map[string]any{
		"question": "Agent question?",
		"answer":   "<p>An answer.</p>",
		"category": "agents",
	})
	if code != http.StatusCreated {
		t.Fatalf("create agents faq: status = %d, message = %q", code, resp.Message)
	}

	var list struct {
		Faqs       []faqData `json:"faqs"`
		Pagination struct {
			Page       int64 `json:"page"`
			Limit      int64 `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"totalPages"`
		} `json:"pagination"`
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/faqs/?page=1&limit=2", token, nil)
	if code != http.StatusOK {
		t.Fatalf("list page 1: status = %d", code)
	}
	decodeData(t, resp, &list)
	if len(list.Faqs) != 2 {
		t.Errorf("page 1 length = %d, want 2", len(list.Faqs))
	}
	if list.Pagination.Total != 4 || list.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v, want total 4 totalPages 2", list.Pagination)
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/faqs/?page=2&limit=3", token, nil)
	if code != http.StatusOK {
		t.Fatalf("list page 2: status = %d", code)
	}
	decodeData(t, resp, &list)
	if len(list.Faqs) != 1 {
		t.Errorf("page 2 length = %d, want 1", len(list.Faqs))
	}

	// The category filter carries its own total.
	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/faqs/?category=agents", token, nil)
	if code != http.StatusOK {
		t.Fatalf("filtered list: status = %d", code)
	}
	decodeData(t, resp, &list)
	if len(list.Faqs) != 1 || list.Faqs[0].Question != "Agent question?" {
		t.Errorf("filtered faqs = %+v", list.Faqs)
	}
	if list.Pagination.Total != 1 {
		t.Errorf("filtered total = %d, want 1", list.Pagination.Total)
	}
}

func TestFaqValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{
			"missing question",
			map[string]any{"answer": "<p>A</p>"},
			"Question is required",
		},
		{
			"blank rich-text answer",
			map[string]any{"question": "Q?", "answer": "<p></p><p> </p>"},
			"Answer is required",
		},
		{
			"unknown category",
			map[string]any{"question": "Q?", "answer": "<p>A</p>", "category": "bogus"},
			"Unknown FAQ category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := env.do(t, http.MethodPost, "/api/v1/admin/faqs/", token, tt.body)
			if code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", code)
			}
			if resp.Message != tt.message {
				t.Errorf("message = %q, want %q", resp.Message, tt.message)
			}
		})
	}
}

type blogData struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Format      string `json:"format"`
}

func TestBlogSlugGeneration(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	create := func(title string) blogData {
		code, resp := env.do(t, http.MethodPost, "/api/v1/admin/blogs/", token, map[string]any{
			"title":       title,
			"description": "<p>Read more inside.</p>",
			"content":     "<p>Body</p>",
		})
		if code != http.StatusCreated {
			t.Fatalf("create %q: status = %d, message = %q", title, code, resp.Message)
		}
		var b blogData
		decodeData(t, resp, &b)
		return b
	}

	first := create("Market Report")
	if first.Slug != "market-report" {
		t.Errorf("slug = %q, want market-report", first.Slug)
	}
	if first.Format != "html" {
		t.Errorf("default format = %q, want html", first.Format)
	}

	// Duplicate titles get a numeric suffix.
	second := create("Market Report")
	if second.Slug != "market-report-2" {
		t.Errorf("duplicate slug = %q, want market-report-2", second.Slug)
	}

	// Updating without a title change keeps the slug.
	code, resp := env.do(t, http.MethodPut, "/api/v1/admin/blogs/"+first.ID, token, map[string]any{
		"title":       "Market Report",
		"description": "<p>Edited.</p>",
	})
	if code != http.StatusOK {
		t.Fatalf("update: status = %d, message = %q", code, resp.Message)
	}
	var updated blogData
	decodeData(t, resp, &updated)
	if updated.Slug != "market-report" {
		t.Errorf("slug after no-op title update = %q", updated.Slug)
	}
}

func TestBlogValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/blogs/", token, map[string]any{
		"title":       "Post",
		"description": "<p>&nbsp;</p>",
	})
	if code != http.StatusBadRequest || resp.Message != "Description is required" {
		t.Errorf("blank description: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodPost, "/api/v1/admin/blogs/", token, map[string]any{
		"title":       "Post",
		"description": "<p>ok</p>",
		"format":      "docx",
	})
	if code != http.StatusBadRequest || resp.Message != "Unsupported content format" {
		t.Errorf("bad format: status = %d, message = %q", code, resp.Message)
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "notes.txt")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte("just text")); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/blogs/upload-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Unsupported or corrupt image file" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestPublicBlogsAreSanitized(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/blogs/", token, map[string]any{
		"title":       "Scripted",
		"description": "<p>Read <script>alert(1)</script>this</p>",
		"content":     "<p>Hello</p><script>alert(2)</script>",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/public/blogs", "", nil)
	if code != http.StatusOK {
		t.Fatalf("public list: status = %d", code)
	}
	var list struct {
		Blogs []blogData `json:"blogs"`
	}
	decodeData(t, resp, &list)
	if len(list.Blogs) != 1 {
		t.Fatalf("list length = %d, want 1", len(list.Blogs))
	}
	if bytes.Contains([]byte(list.Blogs[0].Content), []byte("<script")) {
		t.Errorf("content not sanitized: %q", list.Blogs[0].Content)
	}
	if bytes.Contains([]byte(list.Blogs[0].Description), []byte("<script")) {
		t.Errorf("description not sanitized: %q", list.Blogs[0].Description)
	}

	// The admin surface returns the stored markup untouched.
	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/blogs/"+list.Blogs[0].ID, token, nil)
	if code != http.StatusOK {
		t.Fatalf("admin get: status = %d", code)
	}
	var adminBlog blogData
	decodeData(t, resp, &adminBlog)
	if !bytes.Contains([]byte(adminBlog.Content), []byte("<script")) {
		t.Errorf("admin content rewritten: %q", adminBlog.Content)
	}
}

func TestPublicMarkdownBlogRendered(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/blogs/", token, map[string]any{
		"title":       "Markdown Post",
		"description": "<p>desc</p>",
		"content":     "# Heading\n\nSome **bold** text.",
		"format":      "markdown",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: status = %d, message = %q", code, resp.Message)
	}
	var created blogData
	decodeData(t, resp, &created)

	code, resp = env.do(t, http.MethodGet, "/api/v1/public/blogs/"+created.ID, "", nil)
	if code != http.StatusOK {
		t.Fatalf("public get: status = %d", code)
	}
	var got blogData
	decodeData(t, resp, &got)
	if got.Format != "html" {
		t.Errorf("format = %q, want html", got.Format)
	}
	if !bytes.Contains([]byte(got.Content), []byte("<strong>bold</strong>")) {
		t.Errorf("markdown not rendered: %q", got.Content)
	}
}

func TestNewsletterSubscribeFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/public/newsletter/subscribe", "", map[string]string{
		"email": "Reader@Example.com",
	})
	if code != http.StatusCreated || resp.Message != "Subscribed" {
		t.Fatalf("subscribe: status = %d, message = %q", code, resp.Message)
	}

	// Subscribing again is a friendly no-op.
	code, resp = env.do(t, http.MethodPost, "/api/v1/public/newsletter/subscribe", "", map[string]string{
		"email": "reader@example.com",
	})
	if code != http.StatusOK || resp.Message != "Already subscribed" {
		t.Fatalf("resubscribe: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodPost, "/api/v1/public/newsletter/subscribe", "", map[string]string{
		"email": "not-an-email",
	})
	if code != http.StatusBadRequest || resp.Message != "A valid email is required" {
		t.Errorf("invalid email: status = %d, message = %q", code, resp.Message)
	}

	// The email was stored lowercased, once.
	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/newsletters/", token, nil)
	if code != http.StatusOK {
		t.Fatalf("admin list: status = %d", code)
	}
	var list struct {
		Newsletters []struct {
			ID         string `json:"id"`
			Email      string `json:"email"`
			Subscribed bool   `json:"subscribed"`
		} `json:"newsletters"`
	}
	decodeData(t, resp, &list)
	if len(list.Newsletters) != 1 {
		t.Fatalf("subscribers = %d, want 1", len(list.Newsletters))
	}
	if list.Newsletters[0].Email != "reader@example.com" {
		t.Errorf("email = %q, want reader@example.com", list.Newsletters[0].Email)
	}

	// Unsubscribe via admin, then a public subscribe reactivates the row.
	sub := list.Newsletters[0]
	code, _ = env.do(t, http.MethodPatch, "/api/v1/admin/newsletters/"+sub.ID, token, map[string]any{
		"subscribed": false,
	})
	if code != http.StatusOK {
		t.Fatalf("patch: status = %d", code)
	}
	code, resp = env.do(t, http.MethodPost, "/api/v1/public/newsletter/subscribe", "", map[string]string{
		"email": "reader@example.com",
	})
	if code != http.StatusOK || resp.Message != "Subscribed" {
		t.Errorf("reactivate: status = %d, message = %q", code, resp.Message)
	}
}

func TestContactFormFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/public/contact", "", map[string]any{
		"name":    "Arben",
		"email":   "arben@example.com",
		"message": "Hello",
	})
	if code != http.StatusBadRequest || resp.Message != "GDPR consent is required" {
		t.Fatalf("no consent: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodPost, "/api/v1/public/contact", "", map[string]any{
		"name":       "Arben",
		"lastName":   "Duka",
		"email":      "arben@example.com",
		"message":    "Hello",
		"gdprAgreed": true,
	})
	if code != http.StatusCreated || resp.Message != "Message sent" {
		t.Fatalf("contact: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/send-messages/", token, nil)
	if code != http.StatusOK {
		t.Fatalf("admin list: status = %d", code)
	}
	var list struct {
		Messages []struct {
			ID     string `json:"id"`
			IsRead bool   `json:"isRead"`
		} `json:"messages"`
	}
	decodeData(t, resp, &list)
	if len(list.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(list.Messages))
	}
	if list.Messages[0].IsRead {
		t.Error("new message should start unread")
	}

	// Marking read is idempotent.
	id := list.Messages[0].ID
	for i := 0; i < 2; i++ {
		code, resp = env.do(t, http.MethodPatch, "/api/v1/admin/send-messages/"+id, token, map[string]any{
			"isRead": true,
		})
		if code != http.StatusOK {
			t.Fatalf("patch %d: status = %d", i, code)
		}
		var msg struct {
			IsRead bool `json:"isRead"`
		}
		decodeData(t, resp, &msg)
		if !msg.IsRead {
			t.Errorf("patch %d: isRead = false", i)
		}
	}

	code, resp = env.do(t, http.MethodPatch, "/api/v1/admin/send-messages/"+id, token, map[string]any{})
	if code != http.StatusBadRequest || resp.Message != "Field isRead is required" {
		t.Errorf("empty patch: status = %d, message = %q", code, resp.Message)
	}
}

func TestEnquiryFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/public/enquiries", "", map[string]any{
		"name":          "Mira",
		"email":         "mira@example.com",
		"message":       "Looking for a two-bedroom in Tirana",
		"consentAgreed": true,
	})
	if code != http.StatusCreated || resp.Message != "Request sent" {
		t.Fatalf("enquiry: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/request-forms/", token, nil)
	if code != http.StatusOK {
		t.Fatalf("admin list: status = %d", code)
	}
	var list struct {
		Enquiries []struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"enquiries"`
	}
	decodeData(t, resp, &list)
	if len(list.Enquiries) != 1 {
		t.Fatalf("enquiries = %d, want 1", len(list.Enquiries))
	}
	if list.Enquiries[0].Name != "Mira" {
		t.Errorf("name = %q, want Mira", list.Enquiries[0].Name)
	}
	// Phone was omitted on submission and serializes as empty.
	if list.Enquiries[0].Phone != "" {
		t.Errorf("phone = %q, want empty", list.Enquiries[0].Phone)
	}

	code, resp = env.do(t, http.MethodDelete, "/api/v1/admin/request-forms/"+list.Enquiries[0].ID, token, nil)
	if code != http.StatusOK {
		t.Fatalf("delete: status = %d, message = %q", code, resp.Message)
	}
}

func TestLegalPages(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	// Seeded defaults exist for both pages.
	for _, path := range []string{"/api/v1/admin/privacy-policy", "/api/v1/admin/terms-and-conditions"} {
		code, _ := env.do(t, http.MethodGet, path, token, nil)
		if code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, code)
		}
	}

	code, resp := env.do(t, http.MethodPut, "/api/v1/admin/privacy-policy", token, map[string]any{
		"title":   "Privacy Policy",
		"content": "# Privacy\n\nWe keep your data safe.",
		"format":  "markdown",
	})
	if code != http.StatusOK {
		t.Fatalf("put: status = %d, message = %q", code, resp.Message)
	}
	var page struct {
		Content string `json:"content"`
		HTML    string `json:"html"`
	}
	decodeData(t, resp, &page)
	if !bytes.Contains([]byte(page.HTML), []byte("<h1")) {
		t.Errorf("markdown not rendered in html field: %q", page.HTML)
	}

	code, resp = env.do(t, http.MethodPut, "/api/v1/admin/privacy-policy", token, map[string]any{
		"title":   "Privacy Policy",
		"content": "<p>  </p>",
	})
	if code != http.StatusBadRequest || resp.Message != "Content is required" {
		t.Errorf("blank content: status = %d, message = %q", code, resp.Message)
	}
}

func TestContactInfo(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	// Seeding leaves a default singleton in place.
	code, resp := env.do(t, http.MethodGet, "/api/v1/admin/contact-info", token, nil)
	if code != http.StatusOK {
		t.Fatalf("seeded get: status = %d, message = %q", code, resp.Message)
	}
	var info struct {
		Email string `json:"email"`
	}
	decodeData(t, resp, &info)
	if info.Email != "info@pronim.al" {
		t.Errorf("seeded email = %q", info.Email)
	}

	code, resp = env.do(t, http.MethodPut, "/api/v1/admin/contact-info", token, map[string]any{
		"address":      "Rruga e Durrësit 1, Tirana",
		"phone":        "+355 4 1111111",
		"email":        "office@pronim.al",
		"workingHours": "Mon-Fri 9-17",
	})
	if code != http.StatusOK {
		t.Fatalf("put: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/contact-info", token, nil)
	if code != http.StatusOK {
		t.Fatalf("get: status = %d", code)
	}
	decodeData(t, resp, &info)
	if info.Email != "office@pronim.al" {
		t.Errorf("email after put = %q", info.Email)
	}

	code, resp = env.do(t, http.MethodPut, "/api/v1/admin/contact-info", token, map[string]any{
		"address": "Somewhere",
	})
	if code != http.StatusBadRequest || resp.Message != "Email is required" {
		t.Errorf("missing email: status = %d, message = %q", code, resp.Message)
	}
}

func TestStatsAggregation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	// Fixtures across the counted collections.
	env.do(t, http.MethodPost, "/api/v1/public/newsletter/subscribe", "", map[string]string{"email": "a@x.al"})
	env.do(t, http.MethodPost, "/api/v1/public/newsletter/subscribe", "", map[string]string{"email": "b@x.al"})
	env.do(t, http.MethodPost, "/api/v1/public/contact", "", map[string]any{
		"name": "A", "email": "a@x.al", "message": "hi", "gdprAgreed": true,
	})
	env.do(t, http.MethodPost, "/api/v1/public/enquiries", "", map[string]any{
		"name": "B", "email": "b@x.al", "message": "hi", "consentAgreed": true,
	})
	env.do(t, http.MethodPost, "/api/v1/admin/faqs/", token, map[string]any{
		"question": "Q?", "answer": "<p>A</p>",
	})

	code, resp := env.do(t, http.MethodGet, "/api/v1/admin/stats", token, nil)
	if code != http.StatusOK {
		t.Fatalf("stats: status = %d", code)
	}

	var stats struct {
		Newsletter struct {
			Total      int64 `json:"total"`
			Subscribed int64 `json:"subscribed"`
		} `json:"newsletter"`
		Contact struct {
			Total   int64 `json:"total"`
			Read    int64 `json:"read"`
			Pending int64 `json:"pending"`
		} `json:"contact"`
		Enquiry struct {
			Total int64 `json:"total"`
		} `json:"enquiry"`
		Faq struct {
			Total int64 `json:"total"`
		} `json:"faq"`
	}
	decodeData(t, resp, &stats)

	if stats.Newsletter.Total != 2 || stats.Newsletter.Subscribed != 2 {
		t.Errorf("newsletter = %+v, want total 2 subscribed 2", stats.Newsletter)
	}
	if stats.Contact.Total != 1 || stats.Contact.Pending != 1 || stats.Contact.Read != 0 {
		t.Errorf("contact = %+v, want total 1 pending 1 read 0", stats.Contact)
	}
	if stats.Enquiry.Total != 1 {
		t.Errorf("enquiry total = %d, want 1", stats.Enquiry.Total)
	}
	if stats.Faq.Total != 1 {
		t.Errorf("faq total = %d, want 1", stats.Faq.Total)
	}
}

func TestDirectoryValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/banners/", token, map[string]any{
		"imageUrl": "/uploads/x.webp",
	})
	if code != http.StatusBadRequest || resp.Message != "Title is required" {
		t.Errorf("banner without title: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodPost, "/api/v1/admin/agents/", token, map[string]any{
		"name":   "Ardit",
		"email":  "ardit@pronim.al",
		"status": "Retired",
	})
	if code != http.StatusBadRequest || resp.Message != "Status must be Active or Inactive" {
		t.Errorf("agent with bad status: status = %d, message = %q", code, resp.Message)
	}

	// Status defaults to Active when omitted.
	code, resp = env.do(t, http.MethodPost, "/api/v1/admin/agents/", token, map[string]any{
		"name":  "Ardit",
		"email": "ardit@pronim.al",
	})
	if code != http.StatusCreated {
		t.Fatalf("create agent: status = %d, message = %q", code, resp.Message)
	}
	var agent struct {
		Status string `json:"status"`
	}
	decodeData(t, resp, &agent)
	if agent.Status != "Active" {
		t.Errorf("default status = %q, want Active", agent.Status)
	}
}

func TestAgencyCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/agencies/", token, map[string]any{
		"name":      "Tirana Homes",
		"location":  "Tirana",
		"category":  "Residential",
		"employees": 12,
	})
	if code != http.StatusCreated {
		t.Fatalf("create: status = %d, message = %q", code, resp.Message)
	}
	var agency struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Employees int64  `json:"employees"`
	}
	decodeData(t, resp, &agency)
	if agency.Employees != 12 {
		t.Errorf("employees = %d, want 12", agency.Employees)
	}

	code, resp = env.do(t, http.MethodPut, "/api/v1/admin/agencies/"+agency.ID, token, map[string]any{
		"name":      "Tirana Homes",
		"location":  "Tirana",
		"category":  "Residential",
		"employees": 15,
	})
	if code != http.StatusOK {
		t.Fatalf("update: status = %d, message = %q", code, resp.Message)
	}
	decodeData(t, resp, &agency)
	if agency.Employees != 15 {
		t.Errorf("employees after update = %d, want 15", agency.Employees)
	}

	code, resp = env.do(t, http.MethodDelete, "/api/v1/admin/agencies/"+agency.ID, token, nil)
	if code != http.StatusOK || resp.Message != "Agency deleted" {
		t.Errorf("delete: status = %d, message = %q", code, resp.Message)
	}
}

func TestBannerCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	code, resp := env.do(t, http.MethodPost, "/api/v1/admin/banners/", token, map[string]any{
		"title":    "Summer Offers",
		"imageUrl": "/uploads/summer.webp",
		"position": "homepage",
	})
	if code != http.StatusCreated {
		t.Fatalf("create: status = %d, message = %q", code, resp.Message)
	}
	var banner struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Position string `json:"position"`
	}
	decodeData(t, resp, &banner)
	if banner.Position != "homepage" {
		t.Errorf("position = %q, want homepage", banner.Position)
	}

	code, resp = env.do(t, http.MethodPut, "/api/v1/admin/banners/"+banner.ID, token, map[string]any{
		"title":    "Winter Offers",
		"imageUrl": "/uploads/winter.webp",
	})
	if code != http.StatusOK {
		t.Fatalf("update: status = %d, message = %q", code, resp.Message)
	}

	code, resp = env.do(t, http.MethodGet, "/api/v1/admin/banners/", token, nil)
	if code != http.StatusOK {
		t.Fatalf("list: status = %d", code)
	}
	var list struct {
		Banners []struct {
			Title string `json:"title"`
		} `json:"banners"`
	}
	decodeData(t, resp, &list)
	if len(list.Banners) != 1 || list.Banners[0].Title != "Winter Offers" {
		t.Errorf("list = %+v", list.Banners)
	}

	code, resp = env.do(t, http.MethodDelete, "/api/v1/admin/banners/"+banner.ID, token, nil)
	if code != http.StatusOK || resp.Message != "Banner deleted" {
		t.Errorf("delete: status = %d, message = %q", code, resp.Message)
	}

	code, _ = env.do(t, http.MethodDelete, "/api/v1/admin/banners/"+banner.ID, token, nil)
	if code != http.StatusNotFound {
		t.Errorf("delete again: status = %d, want 404", code)
	}
}
