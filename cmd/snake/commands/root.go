package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/metrics"
	"github.com/battlesnakeio/snake/record"
	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg = config.Load()

var rootCmd = &cobra.Command{
	Use:               "snake",
	Short:             "snake plays a wrap-around game of snake",
	PersistentPreRunE: setup,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	flags.IntVar(&cfg.Scale, "scale", cfg.Scale, "pixels per cell")
	flags.IntVar(&cfg.TickDelay, "tick-delay", cfg.TickDelay, "frames per logical step")
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frames per second")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 seeds from the clock")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show the frame time readout")
	flags.StringVar(&cfg.RecordDir, "record-dir", cfg.RecordDir, "directory to record games into, empty disables recording")
	flags.StringVar(&cfg.MetricsAddr, "prometheus-listen", cfg.MetricsAddr, "prometheus http endpoint, empty disables the exporter")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level, as one of: [debug, info, warn, error]")
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setup(c *cobra.Command, args []string) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	if err := cfg.Validate(); err != nil {
		return err
	}
	metrics.Serve(cfg.MetricsAddr)
	return nil
}

// newSession builds a session from the config, recording it when a record
// directory is set. The returned func closes the recording.
func newSession(opts ...game.Option) (*game.Session, func(), error) {
	w := rules.NewWorld(cfg.WorldOptions()...)
	opts = append(opts, game.WithDebug(cfg.Debug))

	if cfg.RecordDir == "" {
		return game.NewSession(w, opts...), func() {}, nil
	}

	rec, err := record.Create(cfg.RecordDir)
	if err != nil {
		return nil, nil, err
	}
	if err := rec.WriteInfo(w); err != nil {
		rec.Close()
		return nil, nil, errors.Wrap(err, "unable to write recording header")
	}
	log.WithFields(log.Fields{
		"ID":   rec.ID(),
		"Path": rec.Path(),
	}).Info("recording game")

	opts = append(opts, game.WithRecorder(rec))
	closeFn := func() {
		if err := rec.Close(); err != nil {
			log.WithError(err).Error("unable to close recording")
		}
	}
	return game.NewSession(w, opts...), closeFn, nil
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
