// Package app assembles the web application: configuration, logging,
// telemetry, services, and the chi router, plus the HTTP server
// lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"ethocli/internal/config"
	apierrors "ethocli/internal/errors"
	"ethocli/internal/infrastructure"
	"ethocli/internal/middleware"
	"ethocli/internal/services"
	transport "ethocli/internal/transport/http"
)

const AppName = "ethocli"

// Application holds the assembled web application
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	Router        chi.Router
	Server        *http.Server
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.AnalysisMetrics
}

// New builds the application from configuration. Logging and
// telemetry are initialized here so every later component inherits
// them.
func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	providers, err := infrastructure.InitializeOTel(nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	metrics, err := infrastructure.CreateAnalysisMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: providers,
		Metrics:       metrics,
	}
	app.setupRouter()
	app.setupServer()
	return app, nil
}

func (a *Application) setupRouter() {
	errorHandler := apierrors.NewErrorHandler(a.Logger)
	analysisService := services.NewAnalysisService(a.Logger, a.Metrics)
	healthService := services.NewHealthService(infrastructure.ServiceVersion, "", a.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(a.Logger))
	r.Use(middleware.Recoverer(a.Logger))
	r.Use(middleware.Metrics(a.Metrics))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ErrNotFound))
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/analysis", transport.NewAnalysisHandler(analysisService, a.Config.Analysis, a.Logger, errorHandler).Routes())
		r.Mount("/health", transport.NewHealthHandler(healthService, a.Logger).Routes())
	})

	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
}

func (a *Application) setupServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start runs the HTTP server until ctx is cancelled or the listener
// fails.
func (a *Application) Start(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "starting application",
		slog.String("name", AppName),
		slog.String("version", infrastructure.ServiceVersion),
		slog.Int("port", a.Config.Server.Port),
		slog.String("log_level", a.Config.Logging.Level))

	errCh := make(chan error, 1)
	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return a.Shutdown()
	}
}

// Shutdown stops the server gracefully and flushes telemetry.
func (a *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	a.Logger.InfoContext(ctx, "shutting down application")

	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "error shutting down telemetry",
				slog.String("error", err.Error()))
		}
	}

	infrastructure.CloseLogFile()
	a.Logger.InfoContext(ctx, "application shutdown complete")
	return nil
}

// Run runs the application until interrupted
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Start(ctx)
}
