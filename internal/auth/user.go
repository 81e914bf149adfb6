// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// User represents a registered account.
//
// ID, Username and CreatedAt never change after NewUser. PasswordHash holds
// the encoded value produced by a PasswordHasher and stays mutable so a
// future password-change path can replace it through UserStore.Update.
type User struct {
	ID           ulid.ULID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a User with a fresh ID and the current time.
func NewUser(username, passwordHash string) *User {
	return &User{
		ID:           ulid.Make(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// Clone returns a copy that shares no memory with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// PublicUser is the outward-facing view of a User. It never carries the
// password hash.
type PublicUser struct {
	ID        string    `json:"id" yaml:"id"`
	Username  string    `json:"username" yaml:"username"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Public returns the view of u that is safe to show or log.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// UserStore manages user records keyed by username.
//
// Implementations must be safe for concurrent use, and a single call must
// never observe a partially written record. Absence is reported through the
// boolean result, never as an error.
type UserStore interface {
	// FindByUsername returns a copy of the user with the given username.
	FindByUsername(username string) (*User, bool)

	// Save stores the user, overwriting any record with the same username.
	Save(user *User)

	// Update stores the user, overwriting any record with the same username.
	Update(user *User)

	// Insert stores the user only if no record with the same username exists.
	// It reports whether the user was stored. This is the only operation that
	// can enforce username uniqueness under concurrent registration.
	Insert(user *User) bool
}
