package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gantry-hq/gantry/pkg/cli"
	"gantry-hq/gantry/pkg/config"
	"gantry-hq/gantry/pkg/logging"
	"gantry-hq/gantry/pkg/logging/retention"
	"gantry-hq/gantry/pkg/notify"
	"gantry-hq/gantry/pkg/telemetry/metrics"
)

// app holds the wired-up runtime shared by run, batch, and serve: loaded
// configuration, the rotating logger, the retention handler behind it, the
// metrics collector, and the notifier.
type app struct {
	cfg       *config.Config
	logger    *logging.Logger
	logFile   string
	metrics   *metrics.Collector
	retention *retention.Handler
	notifier  *notify.Notifier
	shutdown  *cli.Shutdown
}

// newApp loads configuration and builds the ambient runtime. stem names
// the log file for this mode, e.g. "gantry" for the daemon and
// "gantry_batch" for batch invocations.
func newApp(stem string) (*app, error) {
	cfg, err := config.Load(cfgDir, env)
	if err != nil {
		return nil, cli.NewConfigError(env, err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	collector := metrics.NewCollector(nil)

	logFile := filepath.Join(cfg.Logging.Dir, stem+".log")
	handler := retention.NewHandler(cfg.Logging.Retention.MaxAge, logFile)
	handler.OnPrune = collector.RecordPruned

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		File:      logFile,
		Rotation: logging.RotateConfig{
			MaxBytes: int64(cfg.Logging.Rotation.MaxSizeMB) * 1024 * 1024,
			Daily:    cfg.Logging.Rotation.Daily,
		},
		OnRotate: func(rotated []string) {
			collector.RecordRotation()
			handler.Handle(rotated)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	slog.SetDefault(logger.Logger)

	a := &app{
		cfg:       cfg,
		logger:    logger,
		logFile:   logFile,
		metrics:   collector,
		retention: handler,
		notifier:  notify.New(cfg.Telegram, cfg.HTTP),
		shutdown:  cli.NewShutdown(cfg.Server.ShutdownTimeout.Std()),
	}

	a.shutdown.Register("notifier", func(ctx context.Context) error {
		return a.notifier.Close()
	})
	a.shutdown.Register("logger", func(ctx context.Context) error {
		return a.logger.Close()
	})

	return a, nil
}
