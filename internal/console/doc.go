// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package console is the interactive front end for the auth service.
//
// Controller times and records every call, logs the outcome and turns
// errors into end-user text. Shell reads one command per line and writes
// one reply per command.
package console
