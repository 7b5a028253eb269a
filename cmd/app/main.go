package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/getsentry/sentry-go"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/partyplan/faq/config"
	_ "github.com/partyplan/faq/docs"
	"github.com/partyplan/faq/internal/app"
	"github.com/partyplan/faq/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations on start")
	cfg       config.Config
	lg        *slog.Logger
)

// @title Event FAQ API
// @version 1.0
// @description Questions, answers and their ordering for event pages
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug, os.Stdout)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}
	exitOnError(cfg.Validate())

	if cfg.Log.File != "" {
		lg = newLogger(*flDebug, io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		}))
	}

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			AttachStacktrace: true,
		})
		exitOnError(err)
		defer sentry.Flush(sentryFlushTimeout)
	}

	ctx := context.Background()

	if *flMigrate {
		connConfig, err := db.ConnConfig(&cfg.Database)
		exitOnError(err)
		exitOnError(db.Migrate(ctx, connConfig))
		lg.Info("migrations applied")
	}

	dbConn := pg.Connect(&cfg.Database)
	if err := dbConn.Ping(ctx); err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	service := app.New(&cfg, dbConn, lg)

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

	if err := dbConn.Close(); err != nil {
		lg.Error("database close failed", "error", err)
	}
}

func newLogger(debug bool, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

const sentryFlushTimeout = 2 * time.Second

func exitOnError(err error) {
	if err != nil {
		reportFatal(lg, err)
		os.Exit(1)
	}
}

// reportFatal logs err and sends it to Sentry. Deferred calls do not run
// after os.Exit, so the Sentry queue is flushed here.
func reportFatal(logger *slog.Logger, err error) {
	logger.Error("app init failed", "error", err)
	sentry.CaptureException(err)
	sentry.Flush(sentryFlushTimeout)
}
