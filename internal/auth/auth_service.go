// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"github.com/samber/oops"
)

// Service provides registration, login and token authentication.
type Service struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewService creates a new Service. All dependencies are required.
func NewService(users UserStore, hasher PasswordHasher, tokens TokenIssuer) (*Service, error) {
	if users == nil {
		return nil, oops.Errorf("user store is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	if tokens == nil {
		return nil, oops.Errorf("token issuer is required")
	}
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}, nil
}

// dummyPasswordHash is verified against when a username is unknown so that
// a miss costs the same key derivation as a real check. An all-zero key is
// never produced by PBKDF2 in practice.
var dummyPasswordHash = EncodeHash(make([]byte, SaltLength), make([]byte, KeyLength))

// Register creates a user with the given username and password.
// Returns an AUTH_USER_EXISTS error if the username is taken.
func (s *Service) Register(username, password string) (*User, error) {
	// Fast path: skip the expensive hash for names that are already taken.
	// Insert below is what actually guarantees uniqueness.
	if _, exists := s.users.FindByUsername(username); exists {
		return nil, userAlreadyExists(username)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := NewUser(username, hash)
	if !s.users.Insert(user) {
		return nil, userAlreadyExists(username)
	}

	return user.Clone(), nil
}

// Login verifies credentials and returns a new session token.
//
// Unknown usernames and wrong passwords both yield the same
// AUTH_INVALID_CREDENTIALS error. A stored hash that cannot be parsed yields
// AUTH_MALFORMED_HASH, which callers must not show to end users verbatim.
func (s *Service) Login(username, password string) (string, error) {
	user, exists := s.users.FindByUsername(username)
	if !exists {
		_, _ = s.hasher.Verify(password, dummyPasswordHash) //nolint:errcheck // timing only
		return "", invalidCredentials()
	}

	valid, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", oops.With("username", username).Wrap(err)
	}
	if !valid {
		return "", invalidCredentials()
	}

	return s.tokens.Issue(user), nil
}

// Authenticate resolves a session token to its user.
// An unknown token is reported as absent, not as an error.
func (s *Service) Authenticate(token string) (*User, bool) {
	return s.tokens.Resolve(token)
}
