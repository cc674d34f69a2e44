// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frous/statepoll/feed"
	"github.com/frous/statepoll/models"
	"github.com/frous/statepoll/testutil"
)

// TestFullVotingFlow walks the API end to end through the mux: register two
// users, create a poll, vote, reject the duplicate, reject a non-creator
// close, and read the aggregated results.
func TestFullVotingFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	f := feed.NewMemoryFeed()
	mux := NewRouter(db, cfg, f, nil)

	do := func(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
		t.Helper()
		var headers map[string]string
		if token != "" {
			headers = testutil.AuthHeaders(token)
		}
		req := testutil.MakeRequest(method, path, body, headers)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	// Register a creator in TX and a voter in CA
	w := do("POST", "/auth/register", models.RegisterRequest{
		Email:    "creator@example.com",
		Password: "secret123",
		Region:   "TX",
	}, "")
	testutil.AssertStatus(t, w, http.StatusCreated)

	var creator models.RegisterResponse
	testutil.AssertJSON(t, w, &creator)
	if creator.Token == "" {
		t.Fatal("register returned no token")
	}

	w = do("POST", "/auth/register", models.RegisterRequest{
		Email:    "voter@example.com",
		Password: "secret123",
		Region:   "CA",
	}, "")
	testutil.AssertStatus(t, w, http.StatusCreated)

	var voter models.RegisterResponse
	testutil.AssertJSON(t, w, &voter)

	// Login works with the registered credentials
	w = do("POST", "/auth/login", models.LoginRequest{
		Email:    "voter@example.com",
		Password: "secret123",
	}, "")
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	if login.Region != "CA" {
		t.Errorf("login region = %q, want CA", login.Region)
	}

	// Creator publishes a poll
	w = do("POST", "/polls", models.CreatePollRequest{
		Question: "Tabs or spaces?",
		Options:  []string{"Tabs", "Spaces"},
	}, creator.Token)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatePollResponse
	testutil.AssertJSON(t, w, &created)
	pollID := created.Poll.ID
	if !created.Poll.Active {
		t.Error("new poll should be active")
	}

	// Voter sees it in the active list, not yet voted
	w = do("GET", "/polls", nil, voter.Token)
	testutil.AssertStatus(t, w, http.StatusOK)

	var listing []models.PollListEntry
	testutil.AssertJSON(t, w, &listing)
	if len(listing) != 1 || listing[0].ID != pollID {
		t.Fatalf("active listing = %+v, want the one created poll", listing)
	}
	if listing[0].HasVoted {
		t.Error("has_voted should be false before voting")
	}

	// Vote lands with the voter's home region
	w = do("POST", "/polls/"+pollID+"/votes", models.CastVoteRequest{OptionIndex: 1}, voter.Token)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Second vote from the same user is rejected
	w = do("POST", "/polls/"+pollID+"/votes", models.CastVoteRequest{OptionIndex: 0}, voter.Token)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Listing now reflects the vote
	w = do("GET", "/polls", nil, voter.Token)
	testutil.AssertStatus(t, w, http.StatusOK)
	listing = nil
	testutil.AssertJSON(t, w, &listing)
	if !listing[0].HasVoted {
		t.Error("has_voted should be true after voting")
	}

	// Only the creator may close the poll
	w = do("PATCH", "/polls/"+pollID+"/active", models.SetActiveRequest{Active: false}, voter.Token)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	w = do("PATCH", "/polls/"+pollID+"/active", models.SetActiveRequest{Active: false}, creator.Token)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Closed polls reject further votes
	w = do("POST", "/polls/"+pollID+"/votes", models.CastVoteRequest{OptionIndex: 0}, creator.Token)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Results still include the closed poll with its single CA vote
	w = do("GET", "/results", nil, voter.Token)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp struct {
		Results []models.PollResult `json:"results"`
	}
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(resp.Results))
	}

	res := resp.Results[0]
	if res.TotalVotes != 1 {
		t.Errorf("total votes = %d, want 1", res.TotalVotes)
	}
	if res.NationalCounts[1] != 1 {
		t.Errorf("national counts = %v, want one vote for option 1", res.NationalCounts)
	}
	if ca, ok := res.StateResults["CA"]; !ok || ca.Counts[1] != 1 {
		t.Errorf("state results = %+v, want CA with one vote for option 1", res.StateResults)
	}

	// The creator's own listing shows the now-inactive poll
	w = do("GET", "/polls/mine", nil, creator.Token)
	testutil.AssertStatus(t, w, http.StatusOK)

	var mine []models.Poll
	testutil.AssertJSON(t, w, &mine)
	if len(mine) != 1 || mine[0].Active {
		t.Errorf("own listing = %+v, want the single inactive poll", mine)
	}
}
