// Package main is the entry point for the stride demo client.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/duskfall/stride/internal/config"
	"github.com/duskfall/stride/internal/game"
	"github.com/duskfall/stride/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== stride ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg, game.Options{
		Headless:   config.Headless(),
		RunSeconds: config.RunSeconds(),
	})
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	// Hot-reload movement tuning when an explicit config file is in use.
	if path := config.ConfigPath(); path != "" {
		w, err := config.Watch(path)
		if err != nil {
			logger.Warn("config watch unavailable", zap.Error(err))
		} else {
			defer w.Close()
			g.WatchTuning(w.Events)
		}
	}

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
