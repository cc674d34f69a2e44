// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - JWTSecret: Secret for signing session tokens (required)
  - RedisAddr / RedisPassword: Redis connection for the change feed and
    rate limiting (optional; both features degrade gracefully without it)
  - PollsPerDay: Per-user poll creation limit (0 disables limiting)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-r           Redis address
	-poll-limit  Polls a user may create per day
	-jwt-secret  JWT signing secret

# Environment Variables

Flags fall back to environment variables: PORT, DATABASE_URL,
DATABASE_TYPE, REDIS_ADDRESS, REDIS_PASSWORD, POLLS_PER_DAY, JWT_SECRET.
*/
package cliparse
