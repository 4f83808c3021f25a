// Package main is the entrypoint for the Parley API server.
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

	"github.com/parley-labs/parley/internal/api"
	"github.com/parley-labs/parley/internal/api/handler"
	"github.com/parley-labs/parley/internal/api/response"
	"github.com/parley-labs/parley/internal/chat"
	"github.com/parley-labs/parley/internal/config"
	"github.com/parley-labs/parley/internal/engine"
	"github.com/parley-labs/parley/internal/registry"
	"github.com/parley-labs/parley/internal/session"
	"github.com/parley-labs/parley/internal/transcribe"
	"github.com/parley-labs/parley/pkg/models"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config, fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "engine_provider", cfg.Engine.Provider, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Scratch directory for uploads
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	// 3. Construct inference engines
	completer, transcriber, err := engine.New(cfg.Engine)
	if err != nil {
		return fmt.Errorf("create engines: %w", err)
	}
	slog.Info("engines initialized",
		"completer_available", completer != nil,
		"transcriber_available", transcriber != nil,
	)

	// 4. In-memory stores, process lifetime only
	jobs := registry.New()
	sessions := session.NewStore()

	// 5. Services
	chatSvc := chat.NewService(completer, sessions, models.GenerationParams{
		MaxTokens:   cfg.Engine.MaxTokens,
		Temperature: cfg.Engine.Temperature,
	})
	transcribeSvc := transcribe.NewService(transcriber, jobs, cfg.Upload.Dir)

	// 6. Build router with dependencies
	deps := api.Dependencies{
		HealthHandler:              healthHandler(cfg, completer, transcriber),
		ChatHandler:                handler.NewChatHandler(chatSvc),
		StartConversationHandler:   handler.NewStartConversationHandler(chatSvc),
		ConversationHandler:        handler.NewConversationHandler(chatSvc),
		TranscribeHandler:          handler.NewTranscribeHandler(transcribeSvc),
		TranscriptionStatusHandler: handler.NewTranscriptionStatusHandler(transcribeSvc),
	}

	router := api.NewRouter(deps)

	// 7. Start HTTP server. The generous write timeout leaves room for
	// synchronous completions, which can take tens of seconds.
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout. In-flight transcription goroutines
	// are abandoned; their jobs stay in memory, which is fine because the
	// registry dies with the process anyway.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler reports which inference capabilities are loaded alongside
// the models they are configured to use.
func healthHandler(cfg *config.Config, completer models.Completer, transcriber models.Transcriber) http.HandlerFunc {
	chatModel := cfg.Engine.OpenAI.ChatModel
	if cfg.Engine.Provider == "ollama" {
		chatModel = cfg.Engine.Ollama.Model
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, map[string]any{
			"status": "ok",
			"models": map[string]any{
				"completer": map[string]any{
					"enabled":   cfg.Engine.ChatEnabled,
					"available": completer != nil,
					"provider":  cfg.Engine.Provider,
					"model":     chatModel,
				},
				"transcriber": map[string]any{
					"available": transcriber != nil,
					"model":     cfg.Engine.OpenAI.TranscribeModel,
				},
			},
			"upload_dir": cfg.Upload.Dir,
		})
	}
}
