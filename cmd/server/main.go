package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/promoplay/eggdraw/internal/api"
	"github.com/promoplay/eggdraw/internal/config"
	"github.com/promoplay/eggdraw/internal/factory"
	"github.com/promoplay/eggdraw/internal/mailer"
	"github.com/promoplay/eggdraw/internal/model"
	"github.com/promoplay/eggdraw/internal/services/allocator"
	redisstorage "github.com/promoplay/eggdraw/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		Logger:          logger,
		StorageType:     cfg.StorageType,
		DataDir:         cfg.DataDir,
		AllocatorConfig: allocator.Config{SyncWrites: cfg.CatalogSyncWrites},
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	if cfg.SMTPHost != "" {
		factoryCfg.SMTPConfig = &mailer.SMTPConfig{
			Host:       cfg.SMTPHost,
			Port:       cfg.SMTPPort,
			Username:   cfg.SMTPUsername,
			Password:   cfg.SMTPPassword,
			From:       cfg.MailFrom,
			InternalTo: cfg.MailInternalTo,
		}
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the prize catalog; an absent catalog is not fatal, draws will
	// report no prize available until one is installed and reloaded
	if err := app.Allocator.Load(context.Background()); err != nil {
		if errors.Is(err, model.ErrCatalogNotLoaded) {
			logger.Warn("no prize catalog found")
		} else {
			logger.Error("failed to load prize catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		GameController:   app.GameController,
		RegistryService:  app.Registry,
		AllocatorService: app.Allocator,
		AdminToken:       cfg.AdminToken,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Periodic catalog flush with a final flush on shutdown
	flusherDone := make(chan struct{})
	go func() {
		defer close(flusherDone)
		app.Allocator.Run(ctx, cfg.CatalogFlushInterval)
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Wait for the flusher's final flush before exiting
	cancel()
	<-flusherDone

	logger.Info("server stopped")
}
