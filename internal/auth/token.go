// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// TokenIssuer mints opaque session tokens and resolves them back to users.
//
// Tokens do not expire and are never revoked; each stays valid for the
// lifetime of the issuer. Issuing a token never invalidates earlier ones.
type TokenIssuer interface {
	// Issue creates a new token bound to the user.
	Issue(user *User) string

	// Resolve returns the user bound to the token, if any.
	Resolve(token string) (*User, bool)
}

// GenerateSessionToken returns a random version 4 UUID string (122 random bits).
// Callers must treat the value as opaque.
func GenerateSessionToken() string {
	return uuid.NewString()
}

// HashSessionToken computes the SHA-256 hash of a session token.
// Issuers key their state by this hash so raw tokens are not retained.
func HashSessionToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
