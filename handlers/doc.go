// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

# Handler Types

Each handler struct holds the database connection and configuration and is
wired up by the router:

  - UserHandler: registration, login, current-user lookup
  - PollHandler: poll creation, listings, active-status toggling
  - VotingHandler: vote casting under the single-vote constraint
  - ResultsHandler: national and per-state aggregation
  - EventsHandler: SSE change-notification stream

# Invariants Enforced Here

  - A poll always has at least 2 non-empty options (validated after
    trimming, before insert).
  - Only a poll's creator may toggle its active flag; checked against
    polls.creator_id at mutation time.
  - Votes are rejected for inactive polls and out-of-range option indexes.
  - At most one vote per (poll, user): the insert relies on the store's
    unique constraint, so concurrent duplicates lose with 409 no matter
    what any earlier read said.

# Error Mapping

Validation failures map to 400, missing records to 404, authorization
failures to 403, duplicate votes and inactive-poll votes to 409, store
failures to 500. Store failures are always logged and surfaced, never
swallowed into an empty response.
*/
package handlers
