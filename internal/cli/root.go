// Package cli holds the strength-log command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrlokans/strength-log/internal/config"
	"github.com/mrlokans/strength-log/internal/logging"
)

// BuildInfo is set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand builds the command tree. Running it without a subcommand serves.
func NewRootCommand(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "strength-log",
		Short: "Personal workout log with progression charts and training tips",
		Long: `Strength Log serves a workout logging API and its PWA frontend.

QUICK START:

  $ strength-log                                  # Serve on :5001 with ./strength_log.db
  $ DATABASE_URL=postgres://... strength-log      # Serve from PostgreSQL
  $ strength-log init-db --database-url postgres://...

CONFIGURATION:

  PORT, HOST, DATABASE_URL, SCHEMA_PATH, FRONTEND_DIR, GEMINI_API_KEY,
  GEMINI_MODEL, CORS_ALLOWED_ORIGINS, LOG_LEVEL, LOG_FORMAT`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), info)
		},
	}

	root.AddCommand(newServeCommand(info))
	root.AddCommand(newInitDBCommand())
	root.AddCommand(newVersionCommand(info))
	return root
}

// Execute runs the root command with a context cancelled on SIGINT or SIGTERM.
func Execute(info BuildInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(info).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newLogger builds the process logger from the environment.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
