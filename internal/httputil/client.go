// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"
	"time"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

const defaultTimeout = 30 * time.Second

// NewClient builds the http.Client used for E-utilities calls. Each
// request blocks until it completes, fails, or hits the timeout; there
// is no retry. A zero or negative timeout falls back to 30 s.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
