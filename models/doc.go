// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, password, region
  - LoginRequest: email, password
  - CreatePollRequest: question, options
  - SetActiveRequest: active
  - CastVoteRequest: option_index

# Response Types

Types for JSON responses:

  - RegisterResponse: user_id, token
  - LoginResponse: user_id, email, region, token
  - MeResponse: user_id, email, region
  - CreatePollResponse: poll
  - CastVoteResponse: vote_id, message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: account with a declared region
  - Poll: question plus an ordered, immutable option list
  - Vote: one user's choice on one poll, with the region copied at vote time
  - PollResult / StateResult: aggregated tallies for display

# Regions

Regions lists the valid US state codes; ValidRegion checks membership.
Votes reference poll options by position index, so a poll's option order is
semantically significant and never changes after creation.
*/
package models
