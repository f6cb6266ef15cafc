package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"gantry-hq/gantry/pkg/cli"
	"gantry-hq/gantry/pkg/jobs"
)

var batchFlags struct {
	payload string
	output  string
}

// batchTask is a one-shot unit of work runnable via "gantry batch".
type batchTask func(ctx context.Context, a *app, payload string) error

// batchTasks maps task names to implementations. New applications built on
// the chassis register their tasks here.
var batchTasks = map[string]batchTask{
	"prune-logs": func(ctx context.Context, a *app, payload string) error {
		removed := a.retention.Prune()
		slog.Info("log pruning complete", "removed", removed)
		return nil
	},
	"noop": func(ctx context.Context, a *app, payload string) error {
		slog.Info("noop task executed", "payload_bytes", len(payload))
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <task>",
	Short: "Execute a one-shot batch task",
	Long: `Execute a named batch task and exit.

Each invocation is recorded in the job ledger with a generated ID, runs
under its own log file (gantry_batch.log), and reports start and completion
through the configured notifier.

Examples:
  # Prune expired rotated log files now
  gantry batch prune-logs

  # Run a task with a payload, printing the job record as JSON
  gantry batch noop --payload '{"n": 1}' --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchFlags.payload, "payload", "", "opaque payload passed to the task")
	batchCmd.Flags().StringVarP(&batchFlags.output, "output", "o", "text", "output format (text, json)")
}

func taskNames() string {
	names := make([]string, 0, len(batchTasks))
	for name := range batchTasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func runBatch(cmd *cobra.Command, args []string) error {
	taskName := args[0]
	task, ok := batchTasks[taskName]
	if !ok {
		return cli.NewCommandError("batch",
			fmt.Errorf("unknown task %q (available: %s)", taskName, taskNames()))
	}

	a, err := newApp("gantry_batch")
	if err != nil {
		return err
	}
	defer a.shutdown.Run()

	ctx := cli.SetupSignalHandler()

	store, err := jobs.OpenStore(a.cfg.Jobs.Path)
	if err != nil {
		return cli.NewCommandError("batch", err)
	}
	a.shutdown.Register("job store", func(ctx context.Context) error {
		return store.Close()
	})

	job, err := store.Create(ctx, taskName, batchFlags.payload)
	if err != nil {
		return cli.NewCommandError("batch", err)
	}
	a.metrics.RecordJobCreated()

	slog.Info("batch task starting", "task", taskName, "job_id", job.ID)
	a.notifier.Sendf(ctx, "*%s* batch `%s` started", a.cfg.App.Name, taskName)

	if err := store.SetStatus(ctx, job.ID, jobs.StatusRunning, ""); err != nil {
		slog.Warn("failed to mark job running", "job_id", job.ID, "error", err)
	}

	taskErr := task(ctx, a, batchFlags.payload)

	if taskErr != nil {
		slog.Error("batch task failed", "task", taskName, "job_id", job.ID, "error", taskErr)
		a.notifier.SendError(context.Background(),
			fmt.Sprintf("%s batch %s failed", a.cfg.App.Name, taskName), taskErr)
		if err := store.SetStatus(ctx, job.ID, jobs.StatusFailed, taskErr.Error()); err != nil {
			slog.Warn("failed to mark job failed", "job_id", job.ID, "error", err)
		}
	} else {
		slog.Info("batch task complete", "task", taskName, "job_id", job.ID)
		a.notifier.Sendf(context.Background(), "*%s* batch `%s` complete", a.cfg.App.Name, taskName)
		if err := store.SetStatus(ctx, job.ID, jobs.StatusCompleted, ""); err != nil {
			slog.Warn("failed to mark job complete", "job_id", job.ID, "error", err)
		}
	}

	final, err := store.Get(ctx, job.ID)
	if err != nil {
		final = job
	}
	formatter := cli.NewFormatter(cli.OutputFormat(batchFlags.output))
	if err := formatter.FormatTo(os.Stdout, final); err != nil {
		slog.Warn("failed to render job record", "error", err)
	}

	if taskErr != nil {
		return cli.NewCommandError("batch", taskErr)
	}
	return nil
}
