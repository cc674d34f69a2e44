// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ routing.

# Routes

Public:

	GET  /health                 Liveness check
	POST /auth/register          Create an account (email, password, state)
	POST /auth/login             Exchange credentials for a session token
	GET  /events                 SSE change-notification stream

Authenticated (bearer token):

	GET   /auth/me               Current user
	GET   /polls                 Active polls with the caller's vote status
	POST  /polls                 Create a poll (rate limited when redis is up)
	GET   /polls/mine            The caller's own polls
	PATCH /polls/{id}/active     Toggle a poll (creator only)
	POST  /polls/{id}/votes      Cast a vote
	GET   /results               National and per-state tallies

All business routes are wrapped with request logging.
*/
package router
