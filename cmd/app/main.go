package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/content-admin/config"
	_ "github.com/daniilsolovey/content-admin/docs"
	"github.com/daniilsolovey/content-admin/internal/app"
	"github.com/daniilsolovey/content-admin/internal/db"
	"github.com/daniilsolovey/content-admin/internal/metrics"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations before start")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

//go:generate swag init --dir ./,../../internal/rest --generalInfo main.go --output ../../docs --outputTypes go

// @title Content Admin API
// @version 1.0
// @description Banners, FAQs, notices and terms of the lodging admin back-office
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.SetDatabaseURL(*flDatabaseURL))
	}

	ctx := context.Background()

	var dbConnect *pg.DB
	if cfg.App.Storage == config.StoragePostgres {
		if *flMigrate {
			exitOnError(db.RunMigrations(ctx, cfg.DatabaseURL(), cfg.App.MigrationsDir))
			lg.Info("migrations applied", "dir", cfg.App.MigrationsDir)
		}

		dbConnect = pg.Connect(&cfg.Database)
		if err := dbConnect.Ping(ctx); err != nil {
			dbConnect.Close()
			exitOnError(err)
		}
	}

	metrics.MustRegister()

	service, err := app.New(ctx, cfg, dbConnect, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
