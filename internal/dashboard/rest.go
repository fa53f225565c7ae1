// Copyright (c) 2026 Pronim.al
// SPDX-License-Identifier: GPL-3.0-or-later

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenSource supplies the bearer credential attached to authenticated
// calls.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a fixed bearer token.
type StaticToken string

// Token returns the token itself.
func (t StaticToken) Token() (string, error) {
	return string(t), nil
}

// FileToken reads the bearer token from a file on every use, the way
// the dashboard reads its auth cookie. The file holds the bare token,
// surrounding whitespace ignored.
type FileToken struct {
	Path string
}

// Token reads and trims the token file.
func (t FileToken) Token() (string, error) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", t.Path)
	}
	return token, nil
}

// APIError is a non-2xx response. Message carries the server-provided
// message verbatim when the envelope included one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// envelope is the uniform response wrapper used by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// RESTAdapter is the HTTP binding of Adapter. List responses arrive as
// `{<listKey>: [...]}` inside the envelope data; single-record
// responses arrive as the record itself.
type RESTAdapter[T Entity[T]] struct {
	client  *resty.Client
	path    string
	listKey string
	tokens  TokenSource
}

// NewRESTAdapter creates an HTTP binding for one entity path, e.g.
// path "/admin/agents" with listKey "agents". tokens may be nil for
// public read-only collections.
func NewRESTAdapter[T Entity[T]](baseURL, path, listKey string, tokens TokenSource) *RESTAdapter[T] {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15 * time.Second)

	return &RESTAdapter[T]{
		client:  client,
		path:    path,
		listKey: listKey,
		tokens:  tokens,
	}
}

func (a *RESTAdapter[T]) request(ctx context.Context, authed bool) (*resty.Request, error) {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if authed && a.tokens != nil {
		token, err := a.tokens.Token()
		if err != nil {
			return nil, err
		}
		req.SetAuthToken(token)
	}
	return req, nil
}

func decodeEnvelope(resp *resty.Response) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		if !resp.IsSuccess() {
			return nil, &APIError{StatusCode: resp.StatusCode()}
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !resp.IsSuccess() || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: env.Message}
	}
	return &env, nil
}

// List fetches the full collection.
func (a *RESTAdapter[T]) List(ctx context.Context) ([]T, error) {
	req, err := a.request(ctx, true)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(a.path)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	raw := env.Data
	if a.listKey != "" {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(env.Data, &wrapper); err != nil {
			return nil, fmt.Errorf("decoding list response: %w", err)
		}
		raw = wrapper[a.listKey]
	}

	var records []T
	if raw != nil {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding records: %w", err)
		}
	}
	return records, nil
}

// Create POSTs a new record and returns the server's copy with its
// assigned ID.
func (a *RESTAdapter[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	req, err := a.request(ctx, true)
	if err != nil {
		return zero, err
	}

	resp, err := req.SetBody(rec).Post(a.path)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return zero, err
	}

	var created T
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return zero, fmt.Errorf("decoding created record: %w", err)
	}
	return created, nil
}

// Update PUTs the record under its ID and returns the server's copy.
func (a *RESTAdapter[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T

	req, err := a.request(ctx, true)
	if err != nil {
		return zero, err
	}

	resp, err := req.SetBody(rec).Put(a.path + "/" + rec.RecordID())
	if err != nil {
		return zero, fmt.Errorf("update request: %w", err)
	}
	env, err := decodeEnvelope(resp)
	if err != nil {
		return zero, err
	}

	var updated T
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		return zero, fmt.Errorf("decoding updated record: %w", err)
	}
	return updated, nil
}

// Remove DELETEs the record. A missing ID surfaces the server's
// not-found error.
func (a *RESTAdapter[T]) Remove(ctx context.Context, id string) error {
	req, err := a.request(ctx, true)
	if err != nil {
		return err
	}

	resp, err := req.Delete(a.path + "/" + id)
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}
	_, err = decodeEnvelope(resp)
	return err
}

// PatchField PATCHes a single field, used for the read/unread toggle.
func (a *RESTAdapter[T]) PatchField(ctx context.Context, id, field string, value any) error {
	req, err := a.request(ctx, true)
	if err != nil {
		return err
	}

	resp, err := req.SetBody(map[string]any{field: value}).Patch(a.path + "/" + id)
	if err != nil {
		return fmt.Errorf("patch request: %w", err)
	}
	_, err = decodeEnvelope(resp)
	return err
}
