package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stride-commerce/stride/internal/app"
	"github.com/stride-commerce/stride/internal/assistant"
	"github.com/stride-commerce/stride/internal/auth"
	"github.com/stride-commerce/stride/internal/catalog"
	"github.com/stride-commerce/stride/internal/platform/db"
	"github.com/stride-commerce/stride/internal/uploads"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	if cfg.UsesDevSecret() {
		logger.Warn("signing tokens with the insecure development secret; set JWT_SECRET before deploying")
	}

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Error("migrate schema", slog.Any("error", err))
		os.Exit(1)
	}

	uploadService, err := uploads.NewService(cfg.UploadDir)
	if err != nil {
		logger.Error("prepare upload dir", slog.Any("error", err))
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(auth.NewRepository(pool), tokens)
	authHandler := auth.NewHandler(logger, authService)

	catalogService := catalog.NewService(catalog.NewRepository(pool), cfg.PlaceholderImage)
	catalogHandler := catalog.NewHandler(logger, catalogService, uploadService)

	chatClient := assistant.NewClient(cfg.ChatBaseURL, cfg.OpenAIAPIKey)
	if !chatClient.Configured() {
		logger.Warn("chat api key not configured; /api/ai/ask will fail until it is set")
	}
	assistantHandler := assistant.NewHandler(logger, chatClient, cfg.ChatModel)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		AuthHandler:      authHandler,
		CatalogHandler:   catalogHandler,
		AssistantHandler: assistantHandler,
		RequireAuth:      auth.RequireAuth(tokens),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
