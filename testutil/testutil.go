// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/frous/statepoll/auth"
	"github.com/frous/statepoll/cliparse"
	"github.com/frous/statepoll/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call returns an isolated database; it disappears when the
// connection is closed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		JWTSecret:    "test-jwt-secret",
	}
}

// CreateTestUser inserts a user with the given region and returns the user
// ID and a valid session token for it.
func CreateTestUser(t *testing.T, conn *sql.DB, cfg cliparse.Config, email, region string) (userID, token string) {
	t.Helper()

	userID = uuid.NewString()

	hash, err := auth.HashPassword("testpassword")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (id, email, password_hash, region, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, email, hash, region, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err = auth.GenerateToken(userID, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("Failed to generate test token: %v", err)
	}

	return userID, token
}

// CreateTestPoll inserts a poll and returns its ID.
func CreateTestPoll(t *testing.T, conn *sql.DB, creatorID string, active bool, question string, options ...string) string {
	t.Helper()

	pollID := uuid.NewString()

	rawOptions, err := json.Marshal(options)
	if err != nil {
		t.Fatalf("Failed to encode test options: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO polls (id, question, options, creator_id, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, pollID, question, string(rawOptions), creatorID, active, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// AddTestVote inserts a vote row directly, bypassing the handler.
func AddTestVote(t *testing.T, conn *sql.DB, pollID, userID string, optionIndex int, region string) string {
	t.Helper()

	voteID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO votes (id, poll_id, user_id, option_index, region, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, voteID, pollID, userID, optionIndex, region, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// AuthHeaders returns the header map for an authenticated request.
func AuthHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
