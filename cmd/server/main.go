package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nattawat/golinks/pkg/adapters/handler"
	"github.com/nattawat/golinks/pkg/adapters/repository/file"
	"github.com/nattawat/golinks/pkg/config"
	"github.com/nattawat/golinks/pkg/core/domain"
	"github.com/nattawat/golinks/pkg/core/services"
	"github.com/nattawat/golinks/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// Load the store; a missing or corrupt file is fatal, the server never
	// runs in a degraded mode.
	hasher := services.NewArgon2idHasher()
	repo := file.NewFileRepository(cfg.StorePath, hasher)

	store, err := repo.Load(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrStoreMissing) {
			zapLogger.Fatal("store file not found, run the init CLI first",
				zap.String("path", cfg.StorePath))
		}
		zapLogger.Fatal("cannot load store", zap.Error(err))
	}

	service := services.NewLinkService(store, repo, hasher)
	tokens := services.NewTokenService(cfg.JWTSecret)

	router := handler.NewRouter(cfg, service, tokens, zapLogger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	zapLogger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("store", cfg.StorePath),
		zap.Int("links", len(store.Links)),
	)
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
