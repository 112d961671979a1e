package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/content-admin/config"
	"github.com/daniilsolovey/content-admin/internal/cache"
	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/db"
	"github.com/daniilsolovey/content-admin/internal/memdb"
	"github.com/daniilsolovey/content-admin/internal/rest"
	"github.com/daniilsolovey/content-admin/internal/rpc"
	"github.com/daniilsolovey/content-admin/internal/settings"
)

type App struct {
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config

	closers []io.Closer
}

// New wires storage, cache, services and transports. dbConnect is only
// used with the postgres storage and may be nil otherwise.
func New(ctx context.Context, cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	a := &App{Logger: logger, Config: cfg}

	var (
		repo  content.Repository
		store settings.Store
		ping  func(ctx context.Context) error
	)

	switch cfg.App.Storage {
	case config.StoragePostgres:
		if dbConnect == nil {
			return nil, errors.New("postgres storage needs a database connection")
		}
		if cfg.LogQueries {
			dbConnect.AddQueryHook(db.NewQueryHook(logger))
		}

		database := db.New(dbConnect)
		repo, store, ping = database, database, database.Ping
		a.closers = append(a.closers, database)
	case config.StorageMemory:
		repo, store = memdb.New(), settings.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.App.Storage)
	}

	contentCache, err := a.newCache(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	timeout := cfg.App.RequestTimeout.Duration
	engine := content.NewEngine(repo, contentCache, logger).WithTimeout(timeout)
	sessions := content.NewSessions(engine, cfg.App.MaxSessions)
	coordinator := content.NewCoordinator(repo, contentCache, logger).WithTimeout(timeout)
	settingsService := settings.NewService(store, logger)

	handler := rest.NewHandler(engine, sessions, coordinator, settingsService, logger).
		WithAuthSecret(cfg.Auth.Secret).
		WithHealthCheck(ping)

	a.Echo = handler.RegisterRoutes(rpc.New(logger, engine, sessions, coordinator, settingsService))

	logger.Info("app initialized",
		"storage", cfg.App.Storage,
		"cache", cfg.Cache.Driver,
		"auth", cfg.Auth.Secret != "",
	)

	return a, nil
}

func (a *App) newCache(ctx context.Context, cfg config.Config) (content.Cache, error) {
	switch cfg.Cache.Driver {
	case config.CacheRedis:
		r, err := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			Prefix:   cfg.Cache.Prefix,
			TTL:      cfg.Cache.TTL.Duration,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, r)
		return r, nil
	case config.CacheMemory:
		return cache.NewMemory(cfg.Cache.TTL.Duration), nil
	case config.CacheNone, "":
		return content.NopCache{}, nil
	}

	return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
}

func (a *App) Run(ctx context.Context) error {
	addr := a.Config.Addr()
	a.Logger.Info("starting http server", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return errors.Join(err, a.close())
}

func (a *App) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}
