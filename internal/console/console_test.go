// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package console_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holomush/holoauth/internal/auth"
	"github.com/holomush/holoauth/internal/auth/memory"
	"github.com/holomush/holoauth/internal/console"
)

// testHarness bundles a Controller over real in-memory stores.
type testHarness struct {
	ctrl   *console.Controller
	users  *memory.UserStore
	tokens *memory.TokenIssuer
	logs   *bytes.Buffer
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	return newHarnessWithHasher(t, auth.NewPBKDF2Hasher())
}

func newHarnessWithHasher(t *testing.T, hasher auth.PasswordHasher) *testHarness {
	t.Helper()
	users := memory.NewUserStore()
	tokens := memory.NewTokenIssuer()
	svc, err := auth.NewService(users, hasher, tokens)
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctrl, err := console.NewController(svc, logger)
	require.NoError(t, err)

	return &testHarness{ctrl: ctrl, users: users, tokens: tokens, logs: logs}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
