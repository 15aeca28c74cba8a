package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrlokans/strength-log/internal/config"
	"github.com/mrlokans/strength-log/internal/entrypoint"
)

func newServeCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default if no command given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), info)
		},
	}
}

func runServe(ctx context.Context, info BuildInfo) error {
	cfg := config.NewConfig()
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	return entrypoint.Run(ctx, cfg, info.Version, logger)
}
