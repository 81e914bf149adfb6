// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package memory provides in-memory implementations of the auth stores.
// Nothing survives a process restart.
package memory

import (
	"sync"

	"github.com/holomush/holoauth/internal/auth"
)

// UserStore implements auth.UserStore with a mutex-guarded map keyed by
// username. Records are copied on the way in and on the way out.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]auth.User
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]auth.User),
	}
}

// FindByUsername returns a copy of the user with the given username.
func (s *UserStore) FindByUsername(username string) (*auth.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, false
	}
	return &user, true
}

// Save stores the user, overwriting any existing record with the same username.
func (s *UserStore) Save(user *auth.User) {
	s.put(user)
}

// Update stores the user, overwriting any existing record with the same username.
func (s *UserStore) Update(user *auth.User) {
	s.put(user)
}

// Insert stores the user only if the username is free.
func (s *UserStore) Insert(user *auth.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return false
	}
	s.users[user.Username] = *user
	return true
}

// Len returns the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *UserStore) put(user *auth.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = *user
}

var _ auth.UserStore = (*UserStore)(nil)
