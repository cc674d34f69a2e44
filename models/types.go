// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Region   string `json:"region"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type CastVoteRequest struct {
	OptionIndex int `json:"option_index"`
}

// Response types

type RegisterResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type LoginResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Region string `json:"region"`
	Token  string `json:"token"`
}

type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Region string `json:"region"`
}

type CreatePollResponse struct {
	Poll Poll `json:"poll"`
}

type CastVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

// PollListEntry is a poll decorated with the caller's vote status.
type PollListEntry struct {
	Poll
	HasVoted bool `json:"has_voted"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}

type Poll struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatorID string    `json:"creator_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	UserID      string    `json:"-"` // Never expose in JSON
	OptionIndex int       `json:"option_index"`
	Region      string    `json:"region"`
	CreatedAt   time.Time `json:"created_at"`
}

// Result types

// StateResult holds one state's per-option counts for a poll. Counts always
// has the same length as the poll's options. LeadingOption is the index of
// the option with the most votes in the state; the lowest index wins ties.
type StateResult struct {
	Counts        []int `json:"counts"`
	TotalVotes    int   `json:"total_votes"`
	LeadingOption int   `json:"leading_option"`
}

type PollResult struct {
	Poll            Poll                   `json:"poll"`
	NationalCounts  []int                  `json:"national_counts"`
	NationalPercent []float64              `json:"national_percent"`
	TotalVotes      int                    `json:"total_votes"`
	StateResults    map[string]StateResult `json:"state_results"`
	SkippedVotes    int                    `json:"skipped_votes,omitempty"`
	CreatedAgo      string                 `json:"created_ago,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
