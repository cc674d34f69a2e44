// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/frous/statepoll/cliparse"
	"github.com/frous/statepoll/middleware"
)

// authed wraps a handler with the real auth middleware so tests exercise
// the same identity path as production requests.
func authed(cfg cliparse.Config, h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithAuth(cfg.JWTSecret, h)
}
