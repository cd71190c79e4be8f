package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/pokedex-data/internal/api/rest"
	"github.com/palemoky/pokedex-data/internal/config"
	"github.com/palemoky/pokedex-data/internal/dataset"
	"github.com/palemoky/pokedex-data/internal/logger"
)

func main() {
	// Initialize logger
	debug := os.Getenv("GIN_MODE") != "release"
	logger.Init(debug)
	defer logger.Sync()

	if !config.LoadDotEnv() {
		logger.Debug("No .env file found, continuing")
	}

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Warn("Failed to load config file, using defaults", zap.Error(err))
		cfg, err = config.Load("")
		if err != nil {
			logger.Fatal("Invalid configuration", zap.Error(err))
		}
	}

	logger.Info("Starting Pokédex lookup server",
		zap.String("data_dir", cfg.Server.DataDir),
		zap.Int("port", cfg.Server.Port),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)

	// Load generated documents
	store, err := dataset.Load(cfg.Server.DataDir)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	logger.Info("Dataset loaded",
		zap.String("locale", store.Locale()),
		zap.Int("pokemon", store.PokemonCount()),
		zap.Int("games", len(store.Games())),
	)

	router := rest.SetupRouter(cfg, store)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started",
			zap.Int("port", cfg.Server.Port),
			zap.String("rest_api", fmt.Sprintf("http://localhost:%d/api/v1", cfg.Server.Port)),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
