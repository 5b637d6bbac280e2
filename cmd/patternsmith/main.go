package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"patternsmith/internal/core"
	"patternsmith/internal/render"
	"patternsmith/internal/server"
	"patternsmith/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := core.NewLogger(cfg.LogLevel, cfg.LogFormat)

	st, err := store.New(cfg.PatternsDir)
	if err != nil {
		logger.Error("open pattern store", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := st.Watch(ctx); err != nil {
			logger.Warn("patterns directory watcher stopped", "error", err)
		}
	}()

	generator := core.NewGenerator(render.NewRenderer(), st, logger)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(cfg, logger, generator, st).Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}()

	logger.Info("patternsmith listening", "addr", cfg.Addr, "patterns_dir", cfg.PatternsDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
