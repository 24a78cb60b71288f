package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lenslabs/errorlens/internal/analysis"
	"github.com/lenslabs/errorlens/internal/dashboard"
	"github.com/lenslabs/errorlens/internal/gemini"
	"github.com/lenslabs/errorlens/internal/render"
	"github.com/lenslabs/errorlens/internal/watcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Info().Msg("Starting errorlens")

	primaryKey := os.Getenv("GEMINI_API_KEY_PRIMARY")
	secondaryKey := os.Getenv("GEMINI_API_KEY_SECONDARY")
	if primaryKey == "" || secondaryKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY_PRIMARY and GEMINI_API_KEY_SECONDARY are required")
	}

	logPath := os.Getenv("LOG_FILE")
	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to resolve home directory")
		}
		logPath = filepath.Join(home, "error_dashboard.log")
	}

	pollIntervalKey := os.Getenv("POLL_INTERVAL")
	if !watcher.ValidPollIntervals.Includes(pollIntervalKey) {
		log.Warn().Str("value", pollIntervalKey).Msg("Invalid POLL_INTERVAL, defaulting to TWO_SECONDS")
		pollIntervalKey = "TWO_SECONDS"
	}
	pollInterval := watcher.ResolvePollInterval(pollIntervalKey)

	addr := os.Getenv("DASHBOARD_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8750"
	}

	log.Info().
		Str("logFile", logPath).
		Str("pollInterval", pollIntervalKey).
		Str("addr", addr).
		Msg("Configuration loaded")

	session, err := watcher.NewSession(logPath, pollInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to initialize log store watcher")
	}

	server := dashboard.NewServer(addr)
	runner := analysis.NewRunner(
		gemini.NewClient(gemini.DefaultFlashConfig(primaryKey)),
		gemini.NewClient(gemini.DefaultProConfig(secondaryKey)),
		render.New(),
		server,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Dashboard server failed")
		}
	}()
	log.Info().Str("url", "http://"+addr).Msg("Dashboard ready, open it in a browser")

	runner.ShowIdle()

	for r := range session.Run(ctx) {
		runner.Dispatch(ctx, r)
	}

	// ctx is cancelled by now, so in-flight analyses abort promptly
	runner.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Err(err).Msg("Dashboard shutdown error")
	}

	log.Info().Msg("errorlens stopped")
}
