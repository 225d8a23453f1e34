package app

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/panchayat-backend/internal/data/db"
	"github.com/yungbote/panchayat-backend/internal/http"
	"github.com/yungbote/panchayat-backend/internal/observability"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *db.Service
	Clients  Clients
	Repos    Repos
	Services Services
	Server   *http.Server

	otelShutdown func(context.Context) error
}

func New(ctx context.Context, log *logger.Logger) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	dbService, err := db.NewService(db.Config{
		Driver:     cfg.DBDriver,
		DSN:        cfg.PostgresDSN,
		SQLitePath: cfg.SQLitePath,
	}, log)
	if err != nil {
		shutdownOTel(otelShutdown)
		return nil, fmt.Errorf("init db: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		_ = dbService.Close()
		shutdownOTel(otelShutdown)
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	gdb := dbService.DB()

	clients := wireClients(ctx, log, cfg)
	r := wireRepos(gdb, log)
	svcs := wireServices(gdb, log, cfg, r, clients, metrics)

	return &App{
		Log:          log,
		Cfg:          cfg,
		DB:           dbService,
		Clients:      clients,
		Repos:        r,
		Services:     svcs,
		Server:       wireRouter(log, cfg, svcs, metrics, dbService.Ping),
		otelShutdown: otelShutdown,
	}, nil
}

// Run blocks serving HTTP until ctx is cancelled or the listener fails. On cancellation the
// server drains in-flight requests for up to ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	addr := ":" + a.Cfg.Port
	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("Server listening", "addr", addr)
		errCh <- a.Server.Run(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
	defer cancel()
	a.Log.Info("Shutting down server...")
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	shutdownOTel(a.otelShutdown)
}

func shutdownOTel(fn func(context.Context) error) {
	if fn == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = fn(ctx)
}
