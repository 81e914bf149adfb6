// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package auth provides authentication primitives for HoloAuth.
//
// # Domain Types
//
// A User is created with NewUser, which assigns a fresh ULID and creation
// time. Stored password hashes use the interchange format
// "<base64 salt>:<base64 key>" produced by PBKDF2Hasher.
//
// # Collaborators
//
// Service depends on three interfaces, injected through NewService:
//   - UserStore - keyed user storage with an atomic Insert for uniqueness
//   - PasswordHasher - salted hashing and constant-time verification
//   - TokenIssuer - opaque session tokens resolved back to users
//
// In-memory implementations live in the memory subpackage.
//
// # Errors
//
// Failures are oops errors carrying one of the Code* constants and wrapping
// the matching Err* sentinel. Callers branch on the code or use errors.Is,
// never on message text. The package does not log.
package auth
