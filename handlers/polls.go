// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frous/statepoll/cliparse"
	"github.com/frous/statepoll/middleware"
	"github.com/frous/statepoll/models"
)

type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	creatorID := middleware.UserID(r)

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	// Trim and discard empty options before validating the minimum
	options := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least 2 non-empty options are required")
		return
	}

	rawOptions, err := json.Marshal(options)
	if err != nil {
		slog.Error("failed to encode options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	poll := models.Poll{
		ID:        uuid.NewString(),
		Question:  question,
		Options:   options,
		CreatorID: creatorID,
		Active:    true,
		CreatedAt: time.Now(),
	}

	_, err = h.db.Exec(`
		INSERT INTO polls (id, question, options, creator_id, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, poll.ID, poll.Question, string(rawOptions), poll.CreatorID, poll.Active, poll.CreatedAt)

	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "creator", creatorID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{Poll: poll})
}

// ListActive handles GET /polls
// Returns active polls, newest first, each flagged with whether the caller
// has already voted on it.
func (h *PollHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	rows, err := h.db.Query(`
		SELECT id, question, options, creator_id, active, created_at
		FROM polls
		WHERE active = $1
		ORDER BY created_at DESC
	`, true)
	if err != nil {
		slog.Error("failed to query polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	polls, err := scanPolls(rows)
	if err != nil {
		slog.Error("failed to scan polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// The caller's existing votes, for UI affordance only - correctness of
	// the single-vote rule lives in the votes unique constraint.
	voteRows, err := h.db.Query(`
		SELECT poll_id FROM votes WHERE user_id = $1
	`, userID)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer voteRows.Close()

	voted := make(map[string]bool)
	for voteRows.Next() {
		var pollID string
		if err := voteRows.Scan(&pollID); err != nil {
			slog.Error("failed to scan vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		voted[pollID] = true
	}

	entries := make([]models.PollListEntry, len(polls))
	for i, poll := range polls {
		entries[i] = models.PollListEntry{Poll: poll, HasVoted: voted[poll.ID]}
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// ListMine handles GET /polls/mine
// Returns the caller's own polls regardless of active state, newest first.
func (h *PollHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	rows, err := h.db.Query(`
		SELECT id, question, options, creator_id, active, created_at
		FROM polls
		WHERE creator_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		slog.Error("failed to query polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	polls, err := scanPolls(rows)
	if err != nil {
		slog.Error("failed to scan polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// SetActive handles PATCH /polls/{id}/active
// Only the poll's creator may toggle it; the ownership check happens here
// at mutation time, not in whatever listing led the client to the ID.
func (h *PollHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.SetActiveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var creatorID string
	err := h.db.QueryRow(`
		SELECT creator_id FROM polls WHERE id = $1
	`, pollID).Scan(&creatorID)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if creatorID != userID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the poll's creator may change its status")
		return
	}

	_, err = h.db.Exec(`
		UPDATE polls SET active = $1 WHERE id = $2
	`, req.Active, pollID)

	if err != nil {
		slog.Error("failed to update poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update poll")
		return
	}

	slog.Info("poll status changed", "poll_id", pollID, "active", req.Active)

	w.WriteHeader(http.StatusNoContent)
}
