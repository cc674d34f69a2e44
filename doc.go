// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the StatePoll API server.

StatePoll is a national polling service: users sign up with an email,
password, and home state; anyone can publish polls with two or more
options; each user gets exactly one vote per poll; and results roll up
nationally and per state in near-real-time.

# Starting the Server

The server reads a .env file, environment variables, or CLI flags:

	DATABASE_URL=file:statepoll.db JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3324 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file URL or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): secret for signing session tokens

Optional settings:

  - PORT (-p): server port (default: 3324)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - REDIS_ADDRESS (-r): enables the cross-node change feed and per-user
    poll creation rate limiting
  - POLLS_PER_DAY (-poll-limit): poll creation cap per user per day

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, polls, voting, results, events)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth, CORS, logging, rate limiting, JSON helpers
  - models: request/response/domain types and the region enumeration
  - tally: pure national and per-state vote aggregation
  - feed: change notifications (in-process hub or redis pub/sub)
  - auth: password hashing and session tokens
  - db: connection selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
