package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/metrics"
	"github.com/battlesnakeio/snake/render/raylib"
	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	metrics.Serve(cfg.MetricsAddr)

	w := rules.NewWorld(cfg.WorldOptions()...)
	s := game.NewSession(w, game.WithDebug(cfg.Debug))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := raylib.Run(ctx, s, cfg.FPS); err != nil {
		log.WithError(err).Fatal("window host failed")
	}
}
