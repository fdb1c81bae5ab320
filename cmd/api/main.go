package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tracklane/project-tracker-backend/config"
	"github.com/tracklane/project-tracker-backend/internal/bootstrap"
	"github.com/tracklane/project-tracker-backend/internal/db"
	"github.com/tracklane/project-tracker-backend/internal/jobs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := zerolog.New(os.Stderr)
		fallbackLog.Fatal().Err(err).Msg("config load failed")
	}

	log := newLogger(cfg)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Migrate(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	pool, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	cache, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	if cache != nil {
		defer cache.Close()
	}

	deps := bootstrap.RouterDeps{
		ServiceName: "project-tracker-backend",
		Config:      cfg,
		Log:         log,
		DB:          pool,
		Cache:       cache,
	}
	deps.Repo = bootstrap.ProjectRepository(deps)

	stats := jobs.NewStatsScheduler(deps.Repo, log)
	if err := stats.Start(cfg.App.StatsSchedule); err != nil {
		log.Fatal().Err(err).Msg("stats scheduler failed")
	}
	defer stats.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: bootstrap.BuildRouter(deps),
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.App.Environment == "development" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return log
}
