/*
Package cli provides command-line interface utilities for Gantry.

The cli package includes output formatters, graceful shutdown helpers, and
common CLI error types used by the gantry command.

Output Formatting:

Command results can be rendered as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown

Cleanup Callbacks:

Long-lived commands register teardown work with a Shutdown coordinator,
which runs callbacks in registration order and keeps going past failures:

	shutdown := cli.NewShutdown(10 * time.Second)
	shutdown.Register("jobs store", func(ctx context.Context) error {
		return store.Close()
	})
	defer shutdown.Run()
*/
package cli
