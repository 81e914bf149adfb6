// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holoauth/internal/auth"
)

// NewHashCmd creates the hash subcommand.
func NewHashCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the encoded PBKDF2 hash of a password",
		Long: `Print "<base64 salt>:<base64 key>" for a password. Without --password the
first line of stdin is used, which keeps the password out of shell history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			pw, err := passwordInput(cmd, password)
			if err != nil {
				return err
			}
			encoded, err := auth.NewPBKDF2Hasher().Hash(pw)
			if err != nil {
				return oops.Wrapf(err, "failed to hash password")
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password to hash (default: first line of stdin)")

	return cmd
}

// passwordInput returns the --password value when set, else the first
// line of stdin without its line ending.
func passwordInput(cmd *cobra.Command, password string) (string, error) {
	if cmd.Flags().Changed("password") {
		return password, nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", oops.Wrapf(err, "failed to read password from stdin")
	}
	if line == "" && err == io.EOF {
		return "", oops.Code("NO_PASSWORD").Errorf("no password given: use --password or pipe one on stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
