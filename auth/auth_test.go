// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "hunter22" {
		t.Error("HashPassword() returned the plaintext password")
	}

	if !CheckPassword(hash, "hunter22") {
		t.Error("CheckPassword() rejected the correct password")
	}

	if CheckPassword(hash, "hunter23") {
		t.Error("CheckPassword() accepted the wrong password")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		secret string
	}{
		{"standard", "user-123", "secret-key"},
		{"uuid user id", "0b81a1de-3f9c-4b6a-9f3e-0a2c6d1f9a11", "another-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.userID, tt.secret)
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}

			userID, err := ParseToken(token, tt.secret)
			if err != nil {
				t.Fatalf("ParseToken() error = %v", err)
			}

			if userID != tt.userID {
				t.Errorf("ParseToken() user = %q, want %q", userID, tt.userID)
			}
		})
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-123", "right-secret")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken(token, "wrong-secret"); err != ErrInvalidToken {
		t.Errorf("ParseToken() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "definitely-not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, "secret"); err != ErrInvalidToken {
				t.Errorf("ParseToken(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}
