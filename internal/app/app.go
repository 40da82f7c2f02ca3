package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/interview-deck/config"
	"github.com/daniilsolovey/interview-deck/internal/auth"
	"github.com/daniilsolovey/interview-deck/internal/db"
	"github.com/daniilsolovey/interview-deck/internal/deck"
	"github.com/daniilsolovey/interview-deck/internal/markdown"
	"github.com/daniilsolovey/interview-deck/internal/rest"
	"github.com/daniilsolovey/interview-deck/internal/rpc"
	"github.com/daniilsolovey/interview-deck/internal/study"
	"github.com/daniilsolovey/interview-deck/internal/web"
)

const rpcPath = "/v1/rpc/"

type App struct {
	// DB is nil when no database is configured.
	DB      *db.Repository
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
	Manager *deck.Manager
}

// New wires the application. A nil dbConnect selects the built-in dataset.
func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	var (
		repo     *db.Repository
		provider deck.Provider = deck.NewFallbackProvider()
	)
	if dbConnect != nil {
		repo = db.New(dbConnect)
		provider = deck.NewRemoteProvider(repo, logger)
	}

	manager := deck.NewManager(provider, cfg.Admin.WorkspaceTTL.Duration, logger)

	gate, err := auth.NewGate(cfg.Admin, manager)
	if err != nil {
		return nil, err
	}

	views, err := web.NewViews(markdown.NewRenderer(markdown.DefaultClasses))
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	web.NewHandler(
		manager,
		gate,
		views,
		study.NewAutoFlipper(cfg.Study.HeroFlipInterval.Duration),
		cfg.Admin.SuccessIndicator.Duration,
		logger,
	).RegisterRoutes(e)

	rest.NewDeckHandler(manager, logger).RegisterRoutes(e)

	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		DB:      repo,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
		Manager: manager,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(port))
	a.Logger.InfoContext(ctx, "service started", "addr", addr, "remote", a.Manager.Remote())

	err := a.Echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}

	return nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
				"error", v.Error,
			)
			return nil
		},
	})
}
