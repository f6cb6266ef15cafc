// Package metrics provides Prometheus metrics for Gantry.
//
// All metrics live in the gantry namespace and are registered on a
// collector-owned registry rather than the process-global default, so
// multiple collectors (for example in tests) never collide.
//
// Exposed metrics:
//
//	gantry_log_rotations_total      log file rotations
//	gantry_log_files_pruned_total   expired log files removed
//	gantry_jobs_created_total       job rows created
//	gantry_notifications_total      notification attempts by status
//	gantry_heartbeats_total         daemon loop ticks
package metrics
