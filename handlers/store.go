// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/frous/statepoll/models"
)

// isUniqueViolation sniffs driver error text for a unique constraint
// failure. Neither lib/pq nor the sqlite driver exposes a portable error
// code through database/sql, so both message shapes are matched.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}

// decodeOptions unpacks the stored JSON option array.
func decodeOptions(raw string) ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return nil, fmt.Errorf("malformed options record: %w", err)
	}
	return options, nil
}

// scanPolls reads poll rows from a query over
// (id, question, options, creator_id, active, created_at). Rows whose
// options fail to decode are logged and skipped rather than failing the
// whole listing.
func scanPolls(rows *sql.Rows) ([]models.Poll, error) {
	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		var rawOptions string
		if err := rows.Scan(&poll.ID, &poll.Question, &rawOptions,
			&poll.CreatorID, &poll.Active, &poll.CreatedAt); err != nil {
			return nil, err
		}

		options, err := decodeOptions(rawOptions)
		if err != nil {
			slog.Error("skipping poll with malformed options", "poll_id", poll.ID, "error", err)
			continue
		}
		poll.Options = options

		polls = append(polls, poll)
	}
	return polls, rows.Err()
}

// getPoll loads a single poll by ID. Returns sql.ErrNoRows when absent.
func getPoll(db *sql.DB, pollID string) (models.Poll, error) {
	var poll models.Poll
	var rawOptions string
	err := db.QueryRow(`
		SELECT id, question, options, creator_id, active, created_at
		FROM polls
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &rawOptions,
		&poll.CreatorID, &poll.Active, &poll.CreatedAt)
	if err != nil {
		return models.Poll{}, err
	}

	options, err := decodeOptions(rawOptions)
	if err != nil {
		return models.Poll{}, err
	}
	poll.Options = options

	return poll, nil
}
