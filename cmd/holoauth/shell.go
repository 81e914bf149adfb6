// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/holoauth/internal/auth"
	"github.com/holomush/holoauth/internal/auth/memory"
	"github.com/holomush/holoauth/internal/config"
	"github.com/holomush/holoauth/internal/console"
	"github.com/holomush/holoauth/internal/logging"
	"github.com/holomush/holoauth/internal/observability"
)

// NewShellCmd creates the shell subcommand.
func NewShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive register/login shell",
		Long: `Start an interactive shell that reads one command per line from stdin.
Type 'help' inside the shell for the command list. All users and tokens are
lost when the shell exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runShellWithDeps(cmd.Context(), cmd, nil)
		},
	}
}

// runShellWithDeps runs the shell with injectable dependencies.
// If deps is nil, default implementations are used.
func runShellWithDeps(ctx context.Context, cmd *cobra.Command, deps *ShellDeps) error {
	if deps == nil {
		deps = &ShellDeps{}
	}
	if deps.ObservabilityServerFactory == nil {
		deps.ObservabilityServerFactory = func(addr string, ready observability.ReadinessChecker, logger *slog.Logger) ObservabilityServer {
			return observability.NewServer(addr, ready, logger)
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return oops.Wrapf(err, "invalid configuration")
	}

	logger := logging.Setup(cfg.LoggingOptions(serviceName, version), cmd.ErrOrStderr())

	users := memory.NewUserStore()
	tokens := memory.NewTokenIssuer()
	svc, err := auth.NewService(users, auth.NewPBKDF2Hasher(), tokens)
	if err != nil {
		return oops.Wrapf(err, "failed to create auth service")
	}
	ctrl, err := console.NewController(svc, logger)
	if err != nil {
		return oops.Wrapf(err, "failed to create controller")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var obsServer ObservabilityServer
	if cfg.Metrics.Addr != "" {
		obsServer = deps.ObservabilityServerFactory(cfg.Metrics.Addr, func() bool { return true }, logger)
		console.RegisterMetrics(obsServer.Registerer())
		obsServer.RegisterSizeGauges(users.Len, tokens.Len)

		obsErrChan, err := obsServer.Start()
		if err != nil {
			return oops.Wrapf(err, "failed to start observability server")
		}
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability", logger)
		obsServer.Metrics().SessionsTotal.Inc()

		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := obsServer.Stop(shutdownCtx); err != nil {
				logger.Warn("error stopping observability server", "error", err)
			}
		}()
	}

	logger.Info("shell started", "metrics_addr", cfg.Metrics.Addr)

	sh := console.NewShell(ctrl, cmd.InOrStdin(), cmd.OutOrStdout(), console.WithPrompt(cfg.Shell.Prompt))
	if err := sh.Run(ctx); err != nil {
		return oops.Wrapf(err, "shell stopped")
	}

	logger.Info("shell stopped", "users", users.Len(), "tokens", tokens.Len())
	return nil
}

// monitorServerErrors cancels ctx when a background server fails.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string, logger *slog.Logger) {
	select {
	case err, ok := <-errCh:
		if !ok {
			return
		}
		if err != nil {
			logger.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
	}
}
