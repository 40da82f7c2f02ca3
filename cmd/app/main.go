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

	"github.com/daniilsolovey/interview-deck/config"
	_ "github.com/daniilsolovey/interview-deck/docs"
	"github.com/daniilsolovey/interview-deck/internal/app"
	"github.com/daniilsolovey/interview-deck/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before start")
	flDBURL   = flag.String("database-url", "", "database connection URL, overrides the config file (DATABASE_URL)")
	flPort    = flag.Int("port", 0, "HTTP server port, overrides the config file (PORT)")
	cfg       config.Config
	lg        *slog.Logger
)

// @title Interview Deck API
// @version 1.0
// @description Read-only API over interview question cards
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var (
		found bool
		err   error
	)
	cfg, found, err = config.Load(*flConfig)
	exitOnError(err)
	if !found {
		lg.Warn("config file not found, using defaults", "path", *flConfig)
	}
	if *flDBURL != "" {
		cfg.Database.URL = *flDBURL
	}
	if *flPort > 0 {
		cfg.App.Port = *flPort
	}

	ctx := context.Background()
	dbc := connectDB(ctx)

	service, err := app.New(cfg, dbc, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
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

// connectDB returns nil when no database is configured; the service then runs
// on the built-in dataset.
func connectDB(ctx context.Context) *pg.DB {
	if !cfg.Database.Configured() {
		lg.Warn("database is not configured, serving built-in dataset")
		return nil
	}

	if *flMigrate {
		exitOnError(db.Migrate(ctx, cfg.Database.URL))
		lg.Info("migrations applied")
	}

	opt, err := cfg.Database.Options()
	exitOnError(err)

	dbc := pg.Connect(opt)
	if cfg.Database.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
		lg.Info("SQL query logging enabled")
	}

	// loads fall back to the built-in dataset until the database answers
	if err := dbc.Ping(ctx); err != nil {
		lg.Error("database is unreachable", "error", err)
	}

	return dbc
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
