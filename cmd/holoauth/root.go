// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/holoauth/internal/config"
)

// serviceName identifies this process in logs.
const serviceName = "holoauth"

// NewRootCmd creates the root command for the HoloAuth CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holoauth",
		Short: "HoloAuth - username/password authentication",
		Long: `HoloAuth registers users with salted PBKDF2 password hashes, verifies
logins and issues opaque session tokens. State is held in memory only.`,
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewShellCmd())
	cmd.AddCommand(NewHashCmd())
	cmd.AddCommand(NewVerifyCmd())

	return cmd
}
