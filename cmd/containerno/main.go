package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/example/containerno/internal/app"
	"github.com/example/containerno/internal/config"
	"github.com/example/containerno/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("containerno failed")
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info().
		Str("addr", a.Addr()).
		Str("base_url", cfg.BaseURL).
		Int("max_batch", cfg.MaxBatch).
		Msg("containerno listening")

	// Blocks until Ctrl+C or SIGTERM.
	return a.Start(ctx)
}
