package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tatianab/tradewinds/internal/config"
	"github.com/tatianab/tradewinds/internal/logging"
	"github.com/tatianab/tradewinds/internal/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	// No alternate screen to protect here, so the default file becomes stderr.
	if cfg.LogFile == config.DefaultLogFile {
		cfg.LogFile = "stderr"
	}

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(nil, cfg.Seed, server.WithLogger(logger))
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil && ctx.Err() == nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
