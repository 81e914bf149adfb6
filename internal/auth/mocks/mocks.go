// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package mocks provides testify mocks for the auth collaborator interfaces.
package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/holomush/holoauth/internal/auth"
)

// MockUserStore is a mock auth.UserStore.
type MockUserStore struct {
	mock.Mock
}

// NewMockUserStore creates a MockUserStore that asserts its expectations on cleanup.
func NewMockUserStore(t testing.TB) *MockUserStore {
	m := &MockUserStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FindByUsername implements auth.UserStore.
func (m *MockUserStore) FindByUsername(username string) (*auth.User, bool) {
	args := m.Called(username)
	user, _ := args.Get(0).(*auth.User)
	return user, args.Bool(1)
}

// Save implements auth.UserStore.
func (m *MockUserStore) Save(user *auth.User) {
	m.Called(user)
}

// Update implements auth.UserStore.
func (m *MockUserStore) Update(user *auth.User) {
	m.Called(user)
}

// Insert implements auth.UserStore.
func (m *MockUserStore) Insert(user *auth.User) bool {
	args := m.Called(user)
	return args.Bool(0)
}

// MockPasswordHasher is a mock auth.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a MockPasswordHasher that asserts its expectations on cleanup.
func NewMockPasswordHasher(t testing.TB) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Verify implements auth.PasswordHasher.
func (m *MockPasswordHasher) Verify(password, encodedHash string) (bool, error) {
	args := m.Called(password, encodedHash)
	return args.Bool(0), args.Error(1)
}

// MockTokenIssuer is a mock auth.TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

// NewMockTokenIssuer creates a MockTokenIssuer that asserts its expectations on cleanup.
func NewMockTokenIssuer(t testing.TB) *MockTokenIssuer {
	m := &MockTokenIssuer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Issue implements auth.TokenIssuer.
func (m *MockTokenIssuer) Issue(user *auth.User) string {
	args := m.Called(user)
	return args.String(0)
}

// Resolve implements auth.TokenIssuer.
func (m *MockTokenIssuer) Resolve(token string) (*auth.User, bool) {
	args := m.Called(token)
	user, _ := args.Get(0).(*auth.User)
	return user, args.Bool(1)
}

var (
	_ auth.UserStore      = (*MockUserStore)(nil)
	_ auth.PasswordHasher = (*MockPasswordHasher)(nil)
	_ auth.TokenIssuer    = (*MockTokenIssuer)(nil)
)
