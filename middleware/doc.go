// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - WithAuth: bearer-token authentication; injects the user ID into the
    request context, read back with UserID(r)
  - RateLimit: redis-counted per-user request cap with a 24h window;
    pass-through when redis is not configured
  - CORS: cross-origin headers and preflight handling

# JSON Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a request body into a struct

Handlers never read the Authorization header themselves; identity flows
only through WithAuth and UserID.
*/
package middleware
