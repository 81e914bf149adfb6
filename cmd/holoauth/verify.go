// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holoauth/internal/auth"
)

// Verify outcomes printed on stdout.
const (
	verifyMatch    = "match"
	verifyMismatch = "mismatch"
)

// NewVerifyCmd creates the verify subcommand.
func NewVerifyCmd() *cobra.Command {
	var password, encoded string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against an encoded hash",
		Long: `Check a password against an encoded "<base64 salt>:<base64 key>" hash and
print match or mismatch. A hash that cannot be parsed is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			pw, err := passwordInput(cmd, password)
			if err != nil {
				return err
			}
			ok, err := auth.NewPBKDF2Hasher().Verify(pw, encoded)
			if err != nil {
				return oops.Wrapf(err, "cannot verify")
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), verifyMatch)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), verifyMismatch)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password to check (default: first line of stdin)")
	cmd.Flags().StringVar(&encoded, "hash", "", "encoded hash to check against")
	_ = cmd.MarkFlagRequired("hash")

	return cmd
}
