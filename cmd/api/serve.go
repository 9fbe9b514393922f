package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/agenda-atividades/internal/audit"
	"github.com/BruksfildServices01/agenda-atividades/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-atividades/internal/db"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/agenda-atividades/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-atividades/internal/routes"
)

const shutdownTimeout = 10 * time.Second

// loadConfig lê o ambiente, aplica as flags e configura o logger padrão.
func loadConfig(cmd *cli.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.Load()
	if port := cmd.String("port"); port != "" {
		cfg.ServerPort = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := dbpkg.Open(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	logger.Info("migrations applied", slog.String("driver", cfg.DBDriver))
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// --------------------------------------------------
	// Store: repositório, com cache redis quando configurado
	// --------------------------------------------------
	var store domain.Store = infraRepo.NewActivityGormRepository(db)

	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, serving without cache", slog.String("error", err.Error()))
		} else {
			defer client.Close()
			store = cache.NewActivityCache(store, client, cfg.CacheTTL, logger)
			logger.Info("activity cache enabled", slog.Duration("ttl", cfg.CacheTTL))
		}
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		r.Use(gin.Logger())
	}

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Logger: logger,
		Store:  store,
		Audit:  dispatcher,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server",
			slog.String("address", cfg.Addr()),
			slog.String("timezone", cfg.Timezone),
			slog.Int("calendar_year", cfg.CalendarYear))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		if err := dispatcher.Close(shutdownCtx); err != nil {
			logger.Error("audit drain error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
