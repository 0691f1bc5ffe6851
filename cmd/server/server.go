// @title           Furniture API
// @version         1.0
// @description     Furniture catalog and interior-design assistant relay.

// @host      localhost:8000
// @BasePath  /

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/janhq/furniture-api/internal/config"
	"github.com/janhq/furniture-api/internal/infrastructure/logger"
	"github.com/janhq/furniture-api/internal/infrastructure/metrics"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver"
	"github.com/janhq/furniture-api/pkg/observability"
	"github.com/janhq/furniture-api/pkg/observability/middleware"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	obs        *observability.Provider
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, obs *observability.Provider, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		obs:        obs,
		log:        log,
	}
}

// Start runs the API and metrics listeners until ctx is cancelled or one fails.
func (a *Application) Start(ctx context.Context) error {
	instrumentScrape, err := middleware.Instrument(a.obs.Tracer, a.obs.Meter, "metrics")
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpServer.Run(gctx)
	})
	g.Go(func() error {
		return a.httpServer.RunMetrics(gctx, instrumentScrape(metrics.Handler()))
	})
	return g.Wait()
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	log = log.With().Str("service", cfg.ServiceName).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := CreateApplication(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create application")
	}
	defer cleanup()

	log.Info().
		Int("port", cfg.HTTPPort).
		Int("metrics_port", cfg.MetricsPort).
		Str("environment", cfg.Environment).
		Str("model", cfg.ProviderModel).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Error().Err(err).Msg("application stopped with error")
		cleanup()
		stop()
		os.Exit(1)
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
