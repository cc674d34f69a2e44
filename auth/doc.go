// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles password hashing and session tokens.

# Passwords

Passwords are bcrypt-hashed before storage and never logged or returned:

	hash, err := auth.HashPassword(req.Password)
	ok := auth.CheckPassword(storedHash, req.Password)

# Session Tokens

Sessions are stateless HS256 JWTs carrying the user ID and an expiry
(TokenTTL, 72 hours). Sign-out is client-side token disposal; the server
keeps no session table.

	token, err := auth.GenerateToken(userID, cfg.JWTSecret)
	userID, err := auth.ParseToken(bearer, cfg.JWTSecret)

ParseToken returns ErrInvalidToken for any token that fails verification,
without distinguishing why.
*/
package auth
