// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/holoauth/internal/auth"
	"github.com/holomush/holoauth/pkg/errutil"
)

func TestHashCmd_FromFlag(t *testing.T) {
	out, err := execute(t, "", "hash", "--password", "hunter2")
	require.NoError(t, err)

	encoded := strings.TrimSpace(out)
	ok, err := auth.NewPBKDF2Hasher().Verify("hunter2", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashCmd_FromStdin(t *testing.T) {
	out, err := execute(t, "from stdin\r\nignored\n", "hash")
	require.NoError(t, err)

	ok, err := auth.NewPBKDF2Hasher().Verify("from stdin", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashCmd_StdinWithoutNewline(t *testing.T) {
	out, err := execute(t, "last-line", "hash")
	require.NoError(t, err)

	ok, err := auth.NewPBKDF2Hasher().Verify("last-line", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashCmd_EmptyFlagIsAllowed(t *testing.T) {
	out, err := execute(t, "", "hash", "--password", "")
	require.NoError(t, err)

	ok, err := auth.NewPBKDF2Hasher().Verify("", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashCmd_NoInput(t *testing.T) {
	_, err := execute(t, "", "hash")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "NO_PASSWORD")
}
