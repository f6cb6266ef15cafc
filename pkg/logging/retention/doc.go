// Package retention provides rotation housekeeping for log files: renaming
// just-rotated backups to a stable dated form and pruning backups older
// than a configured age.
//
// # Naming
//
// The rotating writer leaves backups behind with a full timestamp suffix:
//
//	app.log.2026-02-06_00-00-00_000000
//
// The handler renames these to one canonical file per calendar day:
//
//	app_20260206.log
//
// If a canonical file for the day already exists the raw backup is
// discarded; the first rename of a day wins.
//
// # Basic Usage
//
//	handler := retention.NewHandler("10 days", "logs/app.log")
//
//	// Wire as the rotation callback of the log writer.
//	writer.OnRotate = handler.Handle
//
//	// Optionally prune on a schedule as well.
//	sched := retention.NewScheduler(handler, "0 3 * * *")
//	if err := sched.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer sched.Stop()
//
// # Failure Policy
//
// Housekeeping is best-effort by design. Malformed retention strings fall
// back to a 10-day default, unrecognized file names are left untouched,
// dated names that are not real calendar dates are skipped, and files that
// disappear mid-operation are tolerated. At worst the log directory keeps
// files it should have removed; the logging path is never interrupted.
//
// # Concurrency
//
// A handler assumes a single writer process per log directory. No locking
// is performed around the exists/rename/delete sequence.
package retention
