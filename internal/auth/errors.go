// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Error codes for authentication failures.
const (
	CodeUserAlreadyExists  = "AUTH_USER_EXISTS"
	CodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeMalformedHash      = "AUTH_MALFORMED_HASH"
	CodeHashingUnavailable = "AUTH_HASHING_UNAVAILABLE"
)

// Sentinel errors wrapped by every coded error so callers can use errors.Is.
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMalformedHash      = errors.New("malformed password hash")
	ErrHashingUnavailable = errors.New("password hashing unavailable")
)

func userAlreadyExists(username string) error {
	return oops.Code(CodeUserAlreadyExists).
		With("username", username).
		Wrap(ErrUserAlreadyExists)
}

// invalidCredentials is shared by the unknown-user and wrong-password paths.
// Nothing about the cause may leak into the returned value.
func invalidCredentials() error {
	return oops.Code(CodeInvalidCredentials).Wrap(ErrInvalidCredentials)
}

func malformedHash(reason string) error {
	return oops.Code(CodeMalformedHash).
		With("reason", reason).
		Wrap(ErrMalformedHash)
}

func hashingUnavailable(operation string, cause error) error {
	return oops.Code(CodeHashingUnavailable).
		With("operation", operation).
		Wrap(fmt.Errorf("%w: %w", ErrHashingUnavailable, cause))
}

// ErrorCode returns the code attached to an authentication error,
// or "" when err is nil or carries no string code.
func ErrorCode(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code, _ := oopsErr.Code().(string)
	return code
}
