// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
)

// Me calls GET /me with the session cookie and returns the profile.
// Exactly one request is made; failures are returned, never retried.
func (h *HTTP) Me(ctx context.Context) (*User, error) {
	var u User
	if err := h.do(ctx, http.MethodGet, "/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Health calls GET /health and returns the reported status, normally "ok".
// It needs no session.
func (h *HTTP) Health(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := h.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}
