package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"github.com/partyplan/faq/config"
	"github.com/partyplan/faq/internal/db"
	"github.com/partyplan/faq/internal/eventfaq"
	"github.com/partyplan/faq/internal/rest"
	"github.com/partyplan/faq/internal/rpc"
)

const (
	rpcPath     = "/rpc"
	swaggerPath = "/swagger/doc.json"

	defaultCacheTTL = 5 * time.Minute
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config

	redis *redis.Client
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	if cfg.DB.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	a := &App{
		DB:     db.New(dbConnect),
		Logger: logger,
		Config: cfg,
	}

	var cache eventfaq.Cache = eventfaq.NopCache{}
	if cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ttl := cfg.Redis.TTL.Duration
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		cache = eventfaq.NewRedisCache(a.redis, ttl)
	}

	manager := eventfaq.NewManager(a.DB, cache, logger)
	handler := rest.NewFAQHandler(manager, logger, rest.Options{
		JWTSecret:          cfg.Auth.JWTSecret,
		QuestionsPerMinute: cfg.RateLimit.QuestionsPerMinute,
		QuestionBurst:      cfg.RateLimit.Burst,
		Sentry:             cfg.Sentry.DSN != "",
	})

	a.Echo = handler.RegisterRoutes()
	a.Echo.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))
	a.Echo.GET(swaggerPath, a.swaggerDoc)

	return a
}

func (a *App) swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		a.Logger.Error("failed to read swagger doc", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (a *App) Run(ctx context.Context, port int) error {
	if a.redis != nil {
		if err := a.redis.Ping(ctx).Err(); err != nil {
			a.Logger.Warn("redis unavailable, FAQ cache misses until it is back", "error", err)
		}
	}

	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}
