// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testLoginProtectionConfig returns a config suitable for fast testing.
func testLoginProtectionConfig(maxAttempts int, lockoutDuration, attemptWindow time.Duration) LoginProtectionConfig {
	return LoginProtectionConfig{
		IPRateLimit:       10,
		IPBurst:           100,
		MaxFailedAttempts: maxAttempts,
		LockoutDuration:   lockoutDuration,
		AttemptWindow:     attemptWindow,
	}
}

func TestNewLoginProtectionDefaultValues(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{})

	if lp.maxFailedAttempts != 5 {
		t.Errorf("maxFailedAttempts = %d, want 5 (default)", lp.maxFailedAttempts)
	}
	if lp.lockoutDuration != 15*time.Minute {
		t.Errorf("lockoutDuration = %v, want 15m (default)", lp.lockoutDuration)
	}
}

func TestLoginProtectionAccountLockout(t *testing.T) {
	cfg := testLoginProtectionConfig(3, time.Second, time.Minute)
	lp := NewLoginProtection(cfg)
	identifier := "admin"

	locked, _ := lp.IsAccountLocked(identifier)
	if locked {
		t.Error("account should not be locked initially")
	}

	for i := 0; i < cfg.MaxFailedAttempts; i++ {
		lp.RecordFailedAttempt(identifier)
	}

	locked, remaining := lp.IsAccountLocked(identifier)
	if !locked {
		t.Error("account should be locked after max failed attempts")
	}
	if remaining <= 0 {
		t.Errorf("remaining lockout = %v, want > 0", remaining)
	}
}

func TestLoginProtectionLockoutExpires(t *testing.T) {
	cfg := testLoginProtectionConfig(2, 50*time.Millisecond, time.Minute)
	lp := NewLoginProtection(cfg)
	identifier := "admin"

	lp.RecordFailedAttempt(identifier)
	nowLocked, _ := lp.RecordFailedAttempt(identifier)
	if !nowLocked {
		t.Fatal("second failure should lock with MaxFailedAttempts = 2")
	}

	time.Sleep(100 * time.Millisecond)

	locked, _ := lp.IsAccountLocked(identifier)
	if locked {
		t.Error("lock should expire after the lockout duration")
	}
}

func TestLoginProtectionSuccessClearsFailures(t *testing.T) {
	cfg := testLoginProtectionConfig(3, time.Second, time.Minute)
	lp := NewLoginProtection(cfg)
	identifier := "admin"

	lp.RecordFailedAttempt(identifier)
	lp.RecordFailedAttempt(identifier)
	if got := lp.GetRemainingAttempts(identifier); got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}

	lp.RecordSuccessfulLogin(identifier)
	if got := lp.GetRemainingAttempts(identifier); got != cfg.MaxFailedAttempts {
		t.Errorf("remaining after success = %d, want %d", got, cfg.MaxFailedAttempts)
	}
}

func TestLoginProtectionMiddleware(t *testing.T) {
	// Burst of 2 with a slow refill so the third POST is rejected.
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       0.01,
		IPBurst:           2,
		MaxFailedAttempts: 5,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})
	handler := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", nil)
		req.RemoteAddr = "10.1.1.1:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := post(); got != http.StatusOK {
		t.Errorf("first request: status = %d, want 200", got)
	}
	if got := post(); got != http.StatusOK {
		t.Errorf("second request: status = %d, want 200", got)
	}
	if got := post(); got != http.StatusTooManyRequests {
		t.Errorf("third request: status = %d, want 429", got)
	}

	// Non-POST requests bypass the limiter.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/login", nil)
	req.RemoteAddr = "10.1.1.1:4000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET request: status = %d, want 200", rec.Code)
	}
}
