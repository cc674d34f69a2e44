// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/frous/statepoll/cliparse"
	"github.com/frous/statepoll/feed"
	"github.com/frous/statepoll/handlers"
	"github.com/frous/statepoll/middleware"
)

// NewRouter wires the handlers onto a ServeMux. redisClient may be nil;
// rate limiting is then disabled.
func NewRouter(db *sql.DB, cfg cliparse.Config, f feed.Feed, redisClient *redis.Client) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg, f)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	eventsHandler := handlers.NewEventsHandler(f)

	secret := cfg.JWTSecret

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session management (public)
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.WithAuth(secret, userHandler.Me)))

	// Poll authoring
	mux.HandleFunc("POST /polls", middleware.WithLogging(middleware.WithAuth(secret,
		middleware.RateLimit(redisClient, cfg.PollsPerDay, pollHandler.CreatePoll))))
	mux.HandleFunc("GET /polls/mine", middleware.WithLogging(middleware.WithAuth(secret, pollHandler.ListMine)))
	mux.HandleFunc("PATCH /polls/{id}/active", middleware.WithLogging(middleware.WithAuth(secret, pollHandler.SetActive)))

	// Voting
	mux.HandleFunc("GET /polls", middleware.WithLogging(middleware.WithAuth(secret, pollHandler.ListActive)))
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(middleware.WithAuth(secret, votingHandler.CastVote)))

	// Results and live updates
	mux.HandleFunc("GET /results", middleware.WithLogging(middleware.WithAuth(secret, resultsHandler.GetResults)))
	mux.HandleFunc("GET /events", eventsHandler.Stream)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("statepoll API v1"))
	})

	return mux
}
