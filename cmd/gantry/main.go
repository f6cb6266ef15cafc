// Gantry is an application chassis for long-running and batch CLI tools.
//
// It bundles the operational plumbing a production tool needs on day one:
// hierarchical YAML configuration with environment overlays, structured
// logging with size and daily rotation, scheduled log retention, Prometheus
// metrics, a SQLite-backed job ledger, and Telegram notifications.
//
// Usage:
//
//	# Start the daemon with the dev environment
//	gantry run
//
//	# Start with the prod overlay from a custom config directory
//	gantry run --config-dir /etc/gantry --env prod
//
//	# Execute a one-shot batch task
//	gantry batch prune-logs
//
//	# Start the HTTP API
//	gantry serve
//
//	# Show version information
//	gantry version
package main

func main() {
	Execute()
}
