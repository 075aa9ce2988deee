package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/gradestats/internal/adapters/cli"
	service "github.com/okian/gradestats/internal/app"
	"github.com/okian/gradestats/internal/config"
	"github.com/okian/gradestats/pkg/logger"
	"github.com/okian/gradestats/pkg/metrics"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run wires the process and returns its exit code.
func run(args []string) int {
	// Initialize logging; output goes to stderr to keep the menu readable.
	if err := logger.Init(); err != nil {
		// Use os.Stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to warn on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to warn", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("warn")
	}

	newSession := func() *service.Service {
		return service.New(
			service.WithLogger(loggerInstance.Named("session")),
			service.WithInitialCapacity(cfg.InitialCapacity),
		)
	}

	root := cli.NewRootCmd(cfg, newSession)
	root.SetArgs(args)
	cmdErr := root.ExecuteContext(ctx)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			loggerInstance.Error(ctx, "failed to write metrics", logger.String("path", cfg.MetricsFile), logger.Error(err))
		}
	}

	if cmdErr != nil {
		return 1
	}
	return 0
}
