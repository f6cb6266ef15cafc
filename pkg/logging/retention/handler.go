package retention

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Handler performs rotation housekeeping for a single active log file:
// renaming just-rotated backups to their canonical dated form and pruning
// dated files older than the retention period.
//
// A Handler assumes it is the only process rotating and pruning its log
// directory. There is no locking around the exists-then-rename check, so
// concurrent writers to the same directory are not supported.
type Handler struct {
	dir        string
	stem       string
	ext        string
	maxAgeDays int

	// dated matches canonical file names for this handler's stem and
	// extension, anchored: "{stem}_{8 digits}{ext}" and nothing else.
	dated *regexp.Regexp

	// OnPrune, if set, is invoked after every prune pass with the number
	// of files removed. Used for metrics wiring.
	OnPrune func(removed int)

	logger *slog.Logger
	now    func() time.Time
}

// NewHandler creates a Handler for the given active log file path.
// The retention string is parsed once here; malformed values fall back to
// DefaultDays (see ParseDays). The active file itself is never opened or
// touched by the handler, its path only supplies the stem, extension and
// log directory.
func NewHandler(retention, logFile string) *Handler {
	base := filepath.Base(logFile)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	return &Handler{
		dir:        filepath.Dir(logFile),
		stem:       stem,
		ext:        ext,
		maxAgeDays: ParseDays(retention),
		dated: regexp.MustCompile(
			"^" + regexp.QuoteMeta(stem) + `_(\d{8})` + regexp.QuoteMeta(ext) + "$",
		),
		logger: slog.Default().With("component", "logging.retention"),
		now:    time.Now,
	}
}

// MaxAgeDays returns the retention period bound at construction.
func (h *Handler) MaxAgeDays() int {
	return h.maxAgeDays
}

// Handle processes one rotation event. It first renames every raw rotated
// path to its canonical dated name, then prunes expired dated files. The
// rename pass fully completes before the prune pass so a freshly rotated
// file is never visible to the pruner under a prunable name.
//
// Handle never panics or aborts on malformed names, duplicate targets or
// files that vanish mid-operation; those cases degrade to skip/ignore
// because housekeeping must not interrupt the logging path it serves.
func (h *Handler) Handle(rotated []string) {
	for _, raw := range rotated {
		canonical := CanonicalName(raw)
		if canonical == raw {
			// Not a raw rotated file. Leave it alone.
			continue
		}

		if _, err := os.Stat(canonical); err == nil {
			// A backup for this day already exists. First rename wins;
			// later rotations of the same day are dropped.
			if err := os.Remove(raw); err != nil && !os.IsNotExist(err) {
				h.logger.Warn("failed to drop duplicate rotated file",
					"path", raw,
					"error", err,
				)
			}
			continue
		}

		if err := os.Rename(raw, canonical); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			h.logger.Warn("failed to rename rotated file",
				"path", raw,
				"canonical", canonical,
				"error", err,
			)
		}
	}

	h.Prune()
}

// Prune deletes canonical dated files in the log directory whose embedded
// date is strictly older than now minus the retention period. Files whose
// date field is not a valid calendar date are skipped, and deletes racing
// with an external removal are tolerated. Returns the number of files
// removed. Pruning is idempotent.
func (h *Handler) Prune() int {
	cutoff := h.now().AddDate(0, 0, -h.maxAgeDays)

	entries, err := os.ReadDir(h.dir)
	if err != nil {
		h.logger.Warn("failed to scan log directory",
			"dir", h.dir,
			"error", err,
		)
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := h.dated.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		day, err := time.ParseInLocation("20060102", m[1], time.Local)
		if err != nil {
			// Eight digits but not a real calendar date. Leave it in place.
			continue
		}

		if !day.Before(cutoff) {
			continue
		}

		path := filepath.Join(h.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				h.logger.Warn("failed to prune expired log file",
					"path", path,
					"error", err,
				)
			}
			continue
		}
		removed++

		h.logger.Debug("pruned expired log file",
			"path", path,
			"max_age_days", h.maxAgeDays,
		)
	}

	if h.OnPrune != nil {
		h.OnPrune(removed)
	}

	return removed
}
