// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console

import (
	"github.com/samber/oops"

	"github.com/holomush/holoauth/internal/auth"
)

// End-user replies.
const (
	MsgRegistered         = "Registered! You can now login."
	MsgAuthenticated      = "Authenticated! Token: "
	MsgNotAuthenticated   = "Not authenticated."
	MsgLoggedOut          = "Logged out."
	MsgInvalidCredentials = "Invalid username or password"
	MsgUserExistsPrefix   = "User already exists: "
	MsgGeneric            = "Something went wrong. Try again."
)

// UserMessage extracts an end-user message from an error.
// Internal failures, including corrupted stored hashes, all share the
// generic message.
func UserMessage(err error) string {
	if err == nil {
		return MsgGeneric
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return MsgGeneric
	}

	switch oopsErr.Code() {
	case auth.CodeInvalidCredentials:
		return MsgInvalidCredentials
	case auth.CodeUserAlreadyExists:
		if username, ok := oopsErr.Context()["username"].(string); ok {
			return MsgUserExistsPrefix + username
		}
		return MsgUserExistsPrefix
	default:
		return MsgGeneric
	}
}

// statusFor maps an operation error to a metric status.
func statusFor(err error) string {
	switch auth.ErrorCode(err) {
	case "":
		if err == nil {
			return StatusSuccess
		}
		return StatusError
	case auth.CodeInvalidCredentials:
		return StatusInvalidCredentials
	case auth.CodeUserAlreadyExists:
		return StatusUserExists
	default:
		return StatusError
	}
}
