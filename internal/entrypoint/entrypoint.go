package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mrlokans/strength-log/internal/config"
	"github.com/mrlokans/strength-log/internal/database"
	"github.com/mrlokans/strength-log/internal/database/workouts"
	http_controllers "github.com/mrlokans/strength-log/internal/http"
	"github.com/mrlokans/strength-log/internal/tips"
)

// Serve runs the HTTP server on ln until ctx is cancelled, then shuts it
// down, waiting at most timeout for in-flight requests.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, timeout time.Duration, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", zap.Duration("timeout", timeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}

// newTipGenerator returns the Gemini generator when an API key is set, and a
// disabled generator otherwise.
func newTipGenerator(ctx context.Context, cfg config.Tips, logger *zap.Logger) (tips.Generator, error) {
	if cfg.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, /generate-tip will return errors")
		return tips.Disabled{}, nil
	}
	generator, err := tips.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	return generator, nil
}

// Run wires storage, the tip generator and the router, then serves until ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.Config, version string, logger *zap.Logger) error {
	logger.Info("starting Strength Log", zap.String("version", version))

	dialect, err := database.ParseURL(cfg.Database.URL)
	if err != nil {
		return err
	}
	dbOpts := database.Options{Logger: logger, LogLevel: cfg.Database.LogLevel}

	initialized, err := database.InitializeIfNeeded(ctx, dialect, cfg.Database.SchemaPath, dbOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if initialized {
		logger.Info("database initialized", zap.String("backend", dialect.Name()))
	}

	db, err := database.Open(dialect, dbOpts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", zap.Error(err))
		}
	}()

	generator, err := newTipGenerator(ctx, cfg.Tips, logger)
	if err != nil {
		return fmt.Errorf("failed to create tip generator: %w", err)
	}
	logger.Info("tip generator ready", zap.String("generator", generator.Name()))

	repo := workouts.NewRepository(db)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		WorkoutStore:       repo,
		ExerciseStore:      repo,
		TipGenerator:       generator,
		Database:           db,
		FrontendDir:        cfg.Frontend.Dir,
		Version:            version,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:             logger,
	})

	addr := net.JoinHostPort(cfg.HTTP.Host, fmt.Sprint(cfg.HTTP.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	return Serve(ctx, ln, router, timeout, logger)
}
