// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pronimal/pronim-admin/internal/auth"
)

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
}

func TestBearerAuth(t *testing.T) {
	tokens := testTokenManager()
	token, err := tokens.Issue("u1", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotClaims *auth.Claims
	handler := BearerAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = GetClaims(r)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims = nil
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if gotClaims == nil {
					t.Fatal("claims missing from request context")
				}
				if gotClaims.Subject != "u1" || gotClaims.Username != "admin" {
					t.Errorf("claims = %+v", gotClaims)
				}
			}
		})
	}
}

func TestBearerAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewTokenManager("0123456789abcdef0123456789abcdef", -time.Minute)
	token, err := expired.Issue("u1", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	handler := BearerAuth(testTokenManager())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestGetClaims_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims := GetClaims(req); claims != nil {
		t.Errorf("GetClaims = %+v, want nil", claims)
	}
}
