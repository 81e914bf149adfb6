// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package memory

import (
	"sync"

	"github.com/holomush/holoauth/internal/auth"
)

// TokenIssuer implements auth.TokenIssuer with a mutex-guarded map from
// token hash to a snapshot of the user taken at issuance.
//
// Entries are never removed: tokens have no expiry and no revocation path,
// so the map grows with every login for the life of the process.
type TokenIssuer struct {
	mu       sync.RWMutex
	sessions map[string]auth.User
	generate func() string
}

// NewTokenIssuer creates an empty TokenIssuer.
func NewTokenIssuer() *TokenIssuer {
	return &TokenIssuer{
		sessions: make(map[string]auth.User),
		generate: auth.GenerateSessionToken,
	}
}

// Issue mints a token bound to the user and returns it.
func (i *TokenIssuer) Issue(user *auth.User) string {
	token := i.generate()
	key := auth.HashSessionToken(token)

	i.mu.Lock()
	defer i.mu.Unlock()
	i.sessions[key] = *user

	return token
}

// Resolve returns a copy of the user bound to the token.
func (i *TokenIssuer) Resolve(token string) (*auth.User, bool) {
	if token == "" {
		return nil, false
	}
	key := auth.HashSessionToken(token)

	i.mu.RLock()
	defer i.mu.RUnlock()

	user, ok := i.sessions[key]
	if !ok {
		return nil, false
	}
	return &user, true
}

// Len returns the number of issued tokens.
func (i *TokenIssuer) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.sessions)
}

var _ auth.TokenIssuer = (*TokenIssuer)(nil)
