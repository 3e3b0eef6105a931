// Package cli holds the start-up steps shared by the command-line tools.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yumyai/af3plot/internal/config"
	"github.com/yumyai/af3plot/logger"
)

const Version = "0.1.0"

// Init loads the configuration and starts the logger. Every log line of the
// run carries the tool name and a fresh run id. Callers must defer
// logger.Sync.
func Init(tool string) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	logger.With(zap.String("tool", tool), zap.String("run_id", uuid.NewString()))

	if !cfg.DotEnvLoaded {
		logger.Warn("No .env found, using local environment")
	}
	logger.Debug("Start", zap.String("version", Version), zap.Float64("dpi", cfg.DPI))
	return cfg
}

// Require exits with status 2 and the usage text when a mandatory flag was
// not given.
func Require(fs *flag.FlagSet, names ...string) {
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil || f.Value.String() != "" {
			continue
		}
		fmt.Fprintf(fs.Output(), "missing required flag: --%s\n", name)
		fs.Usage()
		os.Exit(2)
	}
}
