package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"

	"github.com/olinsesp/olinsesp-backend/app/modules/modality"
	"github.com/olinsesp/olinsesp-backend/app/modules/registration"
	"github.com/olinsesp/olinsesp-backend/app/modules/schedule"
	"github.com/olinsesp/olinsesp-backend/app/modules/standings"
	"github.com/olinsesp/olinsesp-backend/app/server"
	"github.com/olinsesp/olinsesp-backend/config"
	"github.com/olinsesp/olinsesp-backend/internal/db/bundb"
	"github.com/olinsesp/olinsesp-backend/internal/observability"
	"github.com/olinsesp/olinsesp-backend/pkg/jwt"
)

// App holds the wired application: configuration, observability, database,
// modules, and the HTTP server.
type App struct {
	Cfg *config.Config
	Obs *observability.Observability

	db         *bun.DB
	httpServer *http.Server
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.New(observability.Config{
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
	})

	db, err := bundb.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)

	modalityModule := modality.NewModule(obs, db)
	registrationModule := registration.NewModule(obs, db, modalityModule.Repo)
	standingsModule := standings.NewModule(obs, db, modalityModule.Repo, registrationModule.Repo)
	scheduleModule := schedule.NewModule(obs, db)

	router := server.NewRouter(cfg, obs, tokens, server.Modules{
		Modalities:    modalityModule.Routes(),
		Registrations: registrationModule.Routes(),
		Standings:     standingsModule.Routes(),
		Schedule:      scheduleModule.Routes(),
	})

	return &App{
		Cfg: cfg,
		Obs: obs,
		db:  db,
		httpServer: &http.Server{
			Addr:         cfg.HTTP.Address,
			Handler:      router,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		},
	}, nil
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
// When a metrics address is configured, prometheus is additionally exposed
// on its own listener.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Obs.Logger.Info("HTTP server listening", slog.String("address", a.Cfg.HTTP.Address))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var metricsServer *http.Server
	if addr := a.Cfg.Observability.MetricsAddress; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(a.Obs.Registry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{Addr: addr, Handler: mux}
		go func() {
			a.Obs.Logger.Info("Metrics server listening", slog.String("address", addr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	a.Obs.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown failed: %w", err)
		}
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	return nil
}
