package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkpost/inkpost-be/internal/api"
	"github.com/inkpost/inkpost-be/internal/auth"
	"github.com/inkpost/inkpost-be/internal/config"
	"github.com/inkpost/inkpost-be/internal/database"
	"github.com/inkpost/inkpost-be/internal/generation"
	"github.com/inkpost/inkpost-be/internal/logger"
	"github.com/inkpost/inkpost-be/internal/monitoring"
	"github.com/inkpost/inkpost-be/internal/services"
	"github.com/inkpost/inkpost-be/internal/storage/sqlite"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	store := sqlite.New(db)

	// Set up auth primitives
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up the text-generation provider
	var provider generation.Provider
	if cfg.OpenAIKey != "" {
		provider = generation.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.GenerateTimeout)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, using static generation provider")
		provider = &generation.StaticProvider{Text: "Generation is not configured on this deployment."}
	}

	// Set up services
	userService := services.NewUserService(store, hasher, tokens)
	postService := services.NewPostService(store)
	generateService := services.NewGenerateService(provider, postService, cfg.GenerateTimeout)

	// Set up and run the background scheduled-publish worker
	publisher := monitoring.NewPublisher(postService)
	if err := publisher.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduled-publish worker")
	}

	// Set up router
	router := api.NewRouter(tokens, userService, postService, generateService, cfg.CORSOrigins)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	publisher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
