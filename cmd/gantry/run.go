package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"gantry-hq/gantry/pkg/cli"
	"gantry-hq/gantry/pkg/config"
	"gantry-hq/gantry/pkg/logging/retention"
)

var runFlags struct {
	logLevel string
	dryRun   bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Gantry daemon",
	Long: `Start the Gantry daemon with the configured environment.

The daemon logs a heartbeat on each interval tick, rotates its log file by
size and calendar day, and prunes expired rotated logs on the retention
schedule. Configuration files are watched, so log level changes apply
without a restart.

Examples:
  # Start with the dev environment
  gantry run

  # Start with the prod overlay
  gantry run --env prod

  # Validate config without starting
  gantry run --dry-run`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	if runFlags.dryRun {
		if _, err := config.Load(cfgDir, env); err != nil {
			return cli.NewConfigError(env, err)
		}
		fmt.Println("✓ Configuration valid")
		return nil
	}

	a, err := newApp("gantry")
	if err != nil {
		return err
	}
	defer a.shutdown.Run()

	if runFlags.logLevel != "" {
		a.logger.SetLevel(runFlags.logLevel)
	}

	fmt.Printf("Gantry v%s (%s)\n", Version, env)
	fmt.Println("✓ Configuration loaded")
	fmt.Printf("✓ Logging to %s\n", a.logFile)

	ctx := cli.SetupSignalHandler()

	// Retention scheduler
	scheduler := retention.NewScheduler(a.retention, a.cfg.Logging.Retention.Schedule)
	if err := scheduler.Start(ctx); err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to start retention scheduler: %w", err))
	}
	a.shutdown.Register("retention scheduler", func(ctx context.Context) error {
		scheduler.Stop()
		return nil
	})
	if next := scheduler.NextRun(); next != nil {
		slog.Info("retention scheduler started",
			"max_age_days", a.retention.MaxAgeDays(),
			"next_pruning", next,
		)
	}

	// Reload log level when a config file changes.
	watcher, err := config.NewWatcher(cfgDir)
	if err != nil {
		slog.Warn("config watcher unavailable", "error", err)
	} else {
		go func() {
			err := watcher.Watch(ctx, func() error {
				fresh, err := config.Load(cfgDir, env)
				if err != nil {
					return err
				}
				a.logger.SetLevel(fresh.Logging.Level)
				slog.Info("configuration reloaded", "level", fresh.Logging.Level)
				return nil
			})
			if err != nil && ctx.Err() == nil {
				slog.Warn("config watcher stopped", "error", err)
			}
		}()
	}

	a.notifier.Sendf(ctx, "*%s* v%s started (%s)", a.cfg.App.Name, a.cfg.App.Version, env)
	a.metrics.RecordNotification(notifyStatus(a))

	slog.Info("daemon started",
		"app", a.cfg.App.Name,
		"version", a.cfg.App.Version,
		"interval", a.cfg.App.Interval.Std().String(),
	)
	fmt.Println("\nPress Ctrl+C to stop")

	ticker := time.NewTicker(a.cfg.App.Interval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("shutdown signal received")
			a.notifier.Sendf(context.Background(), "*%s* stopping", a.cfg.App.Name)
			if failed := a.shutdown.Run(); failed > 0 {
				return cli.NewCommandError("run", fmt.Errorf("%d cleanup callbacks failed", failed))
			}
			fmt.Println("✓ Daemon stopped")
			return nil
		case t := <-ticker.C:
			a.metrics.RecordHeartbeat()
			slog.Debug("heartbeat", "at", t.Format(time.RFC3339))
		}
	}
}

func notifyStatus(a *app) string {
	if a.notifier.Enabled() {
		return "sent"
	}
	return "skipped"
}
