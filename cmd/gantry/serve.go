package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gantry-hq/gantry/pkg/cli"
	"gantry-hq/gantry/pkg/jobs"
	"gantry-hq/gantry/pkg/server"
)

var serveFlags struct {
	listenAddress string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API exposing health, jobs, and metrics endpoints.

Endpoints:
  GET  /health     liveness and build information
  POST /jobs       record a new job
  GET  /jobs       list recent jobs
  GET  /jobs/{id}  fetch a single job
  GET  /metrics    Prometheus metrics

Examples:
  # Start on the configured address
  gantry serve

  # Override the listen address
  gantry serve --listen 0.0.0.0:9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp("gantry_serve")
	if err != nil {
		return err
	}
	defer a.shutdown.Run()

	if serveFlags.listenAddress != "" {
		a.cfg.Server.ListenAddress = serveFlags.listenAddress
	}

	store, err := jobs.OpenStore(a.cfg.Jobs.Path)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	a.shutdown.Register("job store", func(ctx context.Context) error {
		return store.Close()
	})

	srv := server.New(a.cfg, store, a.metrics)

	fmt.Printf("Gantry v%s (%s)\n", Version, env)
	fmt.Printf("✓ Server listening on %s\n", a.cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", a.cfg.Server.ListenAddress)
	fmt.Printf("✓ Metrics endpoint: http://%s/metrics\n", a.cfg.Server.ListenAddress)
	fmt.Println("\nPress Ctrl+C to stop")

	ctx := cli.SetupSignalHandler()
	a.notifier.Sendf(ctx, "*%s* API started on %s", a.cfg.App.Name, a.cfg.Server.ListenAddress)

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}

	a.notifier.Sendf(context.Background(), "*%s* API stopped", a.cfg.App.Name)
	fmt.Println("✓ Server stopped")
	return nil
}
