package config

import (
	"os"
	"strconv"

	"github.com/battlesnakeio/snake/rules"
	"github.com/pkg/errors"
)

// Config is everything a session needs to start. Defaults come from the
// environment and can be overridden by command line flags.
type Config struct {
	Width     int
	Height    int
	Scale     int
	TickDelay int
	FPS       int
	Seed      int64

	Debug       bool
	RecordDir   string
	MetricsAddr string
	LogLevel    string
}

// Load reads the configuration from the environment, falling back to the
// defaults for anything unset or unparsable.
func Load() Config {
	return Config{
		Width:       getEnvInt("SNAKE_WIDTH", rules.DefaultWidth),
		Height:      getEnvInt("SNAKE_HEIGHT", rules.DefaultHeight),
		Scale:       getEnvInt("SNAKE_SCALE", rules.DefaultScale),
		TickDelay:   getEnvInt("SNAKE_TICK_DELAY", rules.DefaultTickDelay),
		FPS:         getEnvInt("SNAKE_FPS", 60),
		Seed:        int64(getEnvInt("SNAKE_SEED", 0)),
		RecordDir:   os.Getenv("SNAKE_RECORD_DIR"),
		MetricsAddr: os.Getenv("SNAKE_METRICS_ADDR"),
		LogLevel:    getEnvString("SNAKE_LOG_LEVEL", "info"),
	}
}

// Validate checks that the board can be built and stepped.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("config: scale must be positive, got %d", c.Scale)
	}
	if c.TickDelay <= 0 {
		return errors.Errorf("config: tick delay must be positive, got %d", c.TickDelay)
	}
	if c.FPS <= 0 {
		return errors.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	return nil
}

// WorldOptions translates the config into options for rules.NewWorld. A zero
// seed leaves the world seeded from the clock.
func (c Config) WorldOptions() []rules.WorldOption {
	opts := []rules.WorldOption{
		rules.WithBoard(uint32(c.Width), uint32(c.Height), uint32(c.Scale), uint32(c.TickDelay)),
	}
	if c.Seed != 0 {
		opts = append(opts, rules.WithSeed(uint64(c.Seed)))
	}
	return opts
}

// ScreenSize is the window size in pixels needed to show the whole board.
func (c Config) ScreenSize() (int32, int32) {
	return int32(c.Width * c.Scale), int32(c.Height * c.Scale)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
