// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, pure Go) and "postgres"
(lib/pq).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: accounts with email, bcrypt password hash, and declared region
  - polls: question, JSON-serialized option list, creator, active flag
  - votes: one row per (poll, user), with the voter's region copied in

# Relationships

	users 1──* polls (creator_id)
	polls 1──* votes
	users 1──* votes

# Constraints

  - users.email UNIQUE
  - votes UNIQUE(poll_id, user_id): the single-vote invariant, enforced at
    the store so concurrent submissions cannot race past a client check
  - votes.option_index >= 0
*/
package db
