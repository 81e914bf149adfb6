// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console

import (
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/holomush/holoauth/internal/auth"
	"github.com/holomush/holoauth/pkg/errutil"
)

// Authenticator is the subset of auth.Service the console drives.
type Authenticator interface {
	Register(username, password string) (*auth.User, error)
	Login(username, password string) (string, error)
	Authenticate(token string) (*auth.User, bool)
}

var _ Authenticator = (*auth.Service)(nil)

// Controller wraps an Authenticator with metrics and logging.
// Errors pass through unchanged so callers can still branch on codes.
type Controller struct {
	auth   Authenticator
	logger *slog.Logger
}

// NewController creates a Controller. A nil logger falls back to slog.Default().
func NewController(authenticator Authenticator, logger *slog.Logger) (*Controller, error) {
	if authenticator == nil {
		return nil, oops.Errorf("authenticator is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		auth:   authenticator,
		logger: logger.With("component", "console"),
	}, nil
}

// Register creates a user.
func (c *Controller) Register(username, password string) (*auth.User, error) {
	start := time.Now()
	user, err := c.auth.Register(username, password)
	c.record(OpRegister, err, start, "username", username)
	if err == nil {
		c.logger.Info("user registered", "username", user.Username, "user_id", user.ID.String())
	}
	return user, err
}

// Login verifies credentials and returns a session token.
func (c *Controller) Login(username, password string) (string, error) {
	start := time.Now()
	token, err := c.auth.Login(username, password)
	c.record(OpLogin, err, start, "username", username)
	if err == nil {
		c.logger.Info("user logged in", "username", username)
	}
	return token, err
}

// Whoami resolves a token to its user.
func (c *Controller) Whoami(token string) (*auth.User, bool) {
	start := time.Now()
	user, ok := c.auth.Authenticate(token)

	status := StatusSuccess
	if !ok {
		status = StatusNotFound
	}
	RecordOperation(OpAuthenticate, status, time.Since(start))
	c.logger.Debug("token resolved", "found", ok)

	return user, ok
}

// record counts the outcome and logs failures. Caller mistakes are logged
// at warn, everything else at error.
func (c *Controller) record(operation string, err error, start time.Time, attrs ...any) {
	status := statusFor(err)
	RecordOperation(operation, status, time.Since(start))

	attrs = append(attrs, "operation", operation)
	switch status {
	case StatusSuccess:
	case StatusInvalidCredentials, StatusUserExists:
		errutil.LogWarn(c.logger, operation+" rejected", err, attrs...)
	default:
		errutil.LogError(c.logger, operation+" failed", err, attrs...)
	}
}
