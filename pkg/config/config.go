package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/penaltykick/pkg/game/constants"
	"github.com/cbodonnell/penaltykick/pkg/log"
)

const (
	// LogLevelEnv overrides the default of the -log-level flag.
	LogLevelEnv = "PENALTYKICK_LOG_LEVEL"
	// SeedEnv overrides the default of the -seed flag.
	SeedEnv = "PENALTYKICK_SEED"
)

// Config holds the command line options shared by the front-ends.
type Config struct {
	LogLevel log.LogLevel
	Debug    bool
	Mute     bool
	// Seed seeds the keeper's dive. Zero seeds from the clock.
	Seed int64
	// LogFile redirects log output. Empty logs to stdout.
	LogFile string
	// TickInterval is the game loop interval of the ticker-driven front-end.
	TickInterval time.Duration
}

// Parse parses args (without the program name) with environment fallbacks
// for the flag defaults.
func Parse(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	logLevel := fs.String("log-level", envOrDefault(LogLevelEnv, "info"), "Log level")
	debug := fs.Bool("debug", false, "Show the debug overlay")
	mute := fs.Bool("mute", false, "Disable audio cues")
	seed := fs.Int64("seed", 0, "Seed for the keeper's dive (0 seeds from the clock)")
	logFile := fs.String("log-file", "", "Write logs to this file instead of stdout")
	tick := fs.Duration("tick", constants.DefaultTickInterval, "Game loop interval")

	if v := os.Getenv(SeedEnv); v != "" {
		if err := fs.Set("seed", v); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", SeedEnv, err)
		}
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %v", err)
	}
	if *tick <= 0 {
		return nil, fmt.Errorf("tick interval must be positive: %v", *tick)
	}

	return &Config{
		LogLevel:     parsedLogLevel,
		Debug:        *debug,
		Mute:         *mute,
		Seed:         *seed,
		LogFile:      *logFile,
		TickInterval: *tick,
	}, nil
}

func envOrDefault(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
