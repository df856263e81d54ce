package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/logging"
	"ebiten-pong/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger = logger.With(zap.String("session", uuid.NewString()))

	if err := run(cfg, logger); err != nil {
		logger.Error("game exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.AppConfig, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var m *metrics.Metrics
	if cfg.Metrics.Addr != "" {
		m = metrics.New()
		server := metrics.NewServer(cfg.Metrics.Addr, m, logger)
		g.Go(func() error {
			// A broken metrics endpoint must not end the match
			if err := server.Run(ctx); err != nil {
				logger.Warn("metrics server failed", zap.Error(err))
			}
			return nil
		})
	}

	game := NewGame(cfg, logger, m)

	width, height := config.GetScreenDimensions()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(config.TPS)

	logger.Info("match starting",
		zap.String("title", cfg.Window.Title),
		zap.Bool("metrics", m != nil),
		zap.Bool("debug_colliders", cfg.Debug.Colliders),
	)

	runErr := ebiten.RunGame(game)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}

	score := game.Score()
	logger.Info("match finished",
		zap.Int("player1", score.Get(components.Player1)),
		zap.Int("player2", score.Get(components.Player2)),
	)
	return nil
}
