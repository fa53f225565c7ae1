// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pronimal/pronim-admin/internal/auth"
	"github.com/pronimal/pronim-admin/internal/middleware"
	"github.com/pronimal/pronim-admin/internal/store"
)

// AuthHandler serves login and token verification for the admin dashboard.
type AuthHandler struct {
	queries    *store.Queries
	tokens     *auth.TokenManager
	protection *middleware.LoginProtection
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(db *sql.DB, tokens *auth.TokenManager, protection *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:    store.New(db),
		tokens:     tokens,
		protection: protection,
	}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login handles POST /admin/login. The identifier field accepts either the
// username or the email address.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Identifier and password are required")
		return
	}

	if locked, remaining := h.protection.IsAccountLocked(identifier); locked {
		WriteError(w, http.StatusTooManyRequests,
			fmt.Sprintf("Account temporarily locked. Try again in %d minutes.",
				int(remaining.Minutes())+1))
		return
	}

	user, err := h.queries.GetUserByIdentifier(r.Context(), identifier)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up user", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		// Burn a hash on unknown users so response timing stays uniform
		_, _ = auth.CheckPassword(req.Password, unknownUserHash)
		h.recordFailure(w, identifier)
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		h.recordFailure(w, identifier)
		return
	}

	h.protection.RecordSuccessfulLogin(identifier)

	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, err := auth.HashPassword(req.Password); err == nil {
			if err := h.queries.UpdateUserPassword(r.Context(), user.ID, newHash); err != nil {
				slog.Warn("failed to update password hash", "error", err)
			}
		}
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID, time.Now().UTC()); err != nil {
		slog.Warn("failed to record login time", "error", err)
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("admin login", "category", "auth", "username", user.Username)

	WriteSuccess(w, http.StatusOK, loginResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
	})
}

// unknownUserHash is a throwaway argon2id hash used to equalize timing for
// logins against nonexistent accounts.
const unknownUserHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func (h *AuthHandler) recordFailure(w http.ResponseWriter, identifier string) {
	if locked, duration := h.protection.RecordFailedAttempt(identifier); locked {
		WriteError(w, http.StatusTooManyRequests,
			fmt.Sprintf("Too many failed attempts. Account locked for %d minutes.",
				int(duration.Minutes())))
		return
	}
	WriteError(w, http.StatusUnauthorized, "Invalid credentials")
}

type verifyResponse struct {
	Username string `json:"username"`
}

// Verify handles GET /admin/verify. It runs behind the bearer auth
// middleware, so reaching it means the token is valid.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	WriteSuccess(w, http.StatusOK, verifyResponse{Username: claims.Username})
}
