// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/frous/statepoll/cliparse"
	"github.com/frous/statepoll/feed"
	"github.com/frous/statepoll/middleware"
	"github.com/frous/statepoll/models"
)

type VotingHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	feed feed.Feed
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config, f feed.Feed) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, feed: f}
}

// CastVote handles POST /polls/{id}/votes
//
// The write order matters: validate against the poll, resolve the voter's
// region, then insert under the votes unique constraint. The constraint is
// the only defense against a duplicate - a concurrent submission from the
// same user (double click, second tab) can pass every earlier check.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := getPoll(h.db, pollID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to load poll", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !poll.Active {
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is not open for voting")
		return
	}

	if req.OptionIndex < 0 || req.OptionIndex >= len(poll.Options) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid option for this poll")
		return
	}

	// Region is copied from the user at vote time, never re-derived later
	var region string
	err = h.db.QueryRow(`
		SELECT region FROM users WHERE id = $1
	`, userID).Scan(&region)

	if err != nil {
		slog.Error("failed to resolve voter region", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	voteID := uuid.NewString()
	_, err = h.db.Exec(`
		INSERT INTO votes (id, poll_id, user_id, option_index, region, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, voteID, pollID, userID, req.OptionIndex, region, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")
			return
		}
		slog.Error("failed to insert vote", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	// Vote is durable; a failed notification only delays watching clients
	// until the next event.
	if err := h.feed.Publish(r.Context(), feed.VoteInserted); err != nil {
		slog.Warn("failed to publish vote notification", "error", err)
	}

	slog.Info("vote cast", "poll_id", pollID, "region", region, "option", req.OptionIndex)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID:  voteID,
		Message: "Vote recorded",
	})
}
