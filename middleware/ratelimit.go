// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateWindow is the TTL for a user's creation counter.
const rateWindow = 24 * time.Hour

// RateLimit caps how many times a user may hit the wrapped handler per
// rateWindow, counted in redis. A nil client or a limit <= 0 disables
// limiting entirely. Must run inside WithAuth.
func RateLimit(client *redis.Client, limit int, next http.HandlerFunc) http.HandlerFunc {
	if client == nil || limit <= 0 {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID := UserID(r)
		if userID == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		ctx := r.Context()
		userKey := "poll_limit:" + userID

		count, err := client.Incr(ctx, userKey).Result()
		if err != nil {
			slog.Error("redis error incrementing count", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Rate limiter unavailable")
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			if err := client.Expire(ctx, userKey, rateWindow).Err(); err != nil {
				slog.Error("redis error setting TTL", "error", err)
				ErrorResponse(w, http.StatusInternalServerError, "Rate limiter unavailable")
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := client.TTL(ctx, userKey).Result()
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			ErrorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next(w, r)
	}
}
