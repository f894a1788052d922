// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"

	"grocer/cli/internal/session"

	"github.com/rs/zerolog"
)

// Option customises the HTTP client.
type Option func(*HTTP)

// WithHTTPClient replaces the default 10s-timeout client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(h *HTTP) { h.log = l }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) { h.userAgent = ua }
}

// New creates a backend API implementation for baseURL. store may be nil, in
// which case no session cookie is ever sent or saved.
func New(baseURL string, store session.Store, opts ...Option) *HTTP {
	h := newHTTP(baseURL, store)
	for _, opt := range opts {
		opt(h)
	}
	return h
}
