// Package logging configures the application's slog logger: console output
// on stderr, optional file output through a size- and day-based rotating
// writer, and a runtime-adjustable level.
//
// Rotation leaves timestamped backup files behind and reports them through
// a callback; see the retention subpackage for the housekeeping that
// renames and prunes those backups.
package logging
