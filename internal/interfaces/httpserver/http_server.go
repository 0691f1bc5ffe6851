package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/janhq/furniture-api/docs/swagger"
	"github.com/janhq/furniture-api/internal/config"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/handlers"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/middlewares"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/responses"
	"github.com/janhq/furniture-api/internal/interfaces/httpserver/routes"
)

const bannerMessage = "Furniture API Server"

// HTTPServer is the HTTP server for the furniture API.
type HTTPServer struct {
	cfg         *config.Config
	engine      *gin.Engine
	log         zerolog.Logger
	handlerProv *handlers.Provider
	routeProv   *routes.Provider
}

// New creates a new HTTP server.
func New(cfg *config.Config, log zerolog.Logger, handlerProvider *handlers.Provider) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Status:  "error",
			Message: "internal server error",
		})
	}))

	// Apply middlewares in order
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.Tracing(cfg.ServiceName))
	engine.Use(middlewares.Metrics())
	engine.Use(middlewares.CORS(middlewares.DefaultCORSConfig(cfg.CORSAllowedOrigins)))
	engine.Use(middlewares.Logging(log))

	registerCoreRoutes(engine, cfg)

	routeProvider := routes.NewProvider(handlerProvider)
	routeProvider.Register(engine)

	return &HTTPServer{
		cfg:         cfg,
		engine:      engine,
		log:         log,
		handlerProv: handlerProvider,
		routeProv:   routeProvider,
	}
}

// Handler exposes the engine, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}
	return serve(ctx, server, s.cfg, s.log, "HTTP server")
}

// RunMetrics serves /metrics on its own port until ctx is cancelled.
// It returns immediately when the metrics port is disabled.
func (s *HTTPServer) RunMetrics(ctx context.Context, handler http.Handler) error {
	addr := s.cfg.MetricsAddr()
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	return serve(ctx, &http.Server{Addr: addr, Handler: mux}, s.cfg, s.log, "metrics server")
}

func serve(ctx context.Context, server *http.Server, cfg *config.Config, log zerolog.Logger, name string) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg(name + " listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg(name + " error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("context cancelled, shutting down " + name)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, responses.MessageResponse{Message: bannerMessage})
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":              "ready",
			"provider_configured": cfg.HasProviderCredential(),
		})
	})

	if cfg.EnableSwagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
