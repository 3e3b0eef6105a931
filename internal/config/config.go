// Package config reads the environment defaults shared by the plotting
// tools. Command-line flags override everything here.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel = "AF3PLOT_LOG_LEVEL"
	EnvDPI      = "AF3PLOT_DPI"

	DefaultDPI = 500.0
)

type Config struct {
	LogLevel zapcore.Level
	DPI      float64

	// DotEnvLoaded is false when no .env file was found.
	DotEnvLoaded bool
}

// Load reads an optional .env file from the working directory and then the
// process environment. A missing .env is not an error.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:     zapcore.InfoLevel,
		DPI:          DefaultDPI,
		DotEnvLoaded: godotenv.Load() == nil,
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, v, err)
		}
		cfg.LogLevel = level
	}

	if v := os.Getenv(EnvDPI); v != "" {
		dpi, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvDPI, v, err)
		}
		if dpi <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be positive", EnvDPI, v)
		}
		cfg.DPI = dpi
	}

	return cfg, nil
}
