// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/frous/statepoll/cliparse"
	"github.com/frous/statepoll/middleware"
	"github.com/frous/statepoll/models"
	"github.com/frous/statepoll/tally"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /results
// Fetches every poll (newest first) and every vote, then aggregates
// in-process. Clients re-request this endpoint whenever the change feed
// signals a new vote; there is no incremental path.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, question, options, creator_id, active, created_at
		FROM polls
		ORDER BY created_at DESC
	`)
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

	voteRows, err := h.db.Query(`
		SELECT id, poll_id, user_id, option_index, region, created_at
		FROM votes
	`)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer voteRows.Close()

	votes := []models.Vote{}
	for voteRows.Next() {
		var v models.Vote
		if err := voteRows.Scan(&v.ID, &v.PollID, &v.UserID,
			&v.OptionIndex, &v.Region, &v.CreatedAt); err != nil {
			slog.Error("failed to scan vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		votes = append(votes, v)
	}
	if err := voteRows.Err(); err != nil {
		slog.Error("failed to read votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	results := tally.Aggregate(polls, votes)
	for i := range results {
		results[i].CreatedAgo = humanize.Time(results[i].Poll.CreatedAt)
		if results[i].SkippedVotes > 0 {
			slog.Warn("skipped malformed votes during aggregation",
				"poll_id", results[i].Poll.ID, "skipped", results[i].SkippedVotes)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}
