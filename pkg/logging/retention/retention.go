package retention

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDays is the retention period used when a retention string
// cannot be parsed.
const DefaultDays = 10

// retentionPattern matches a retention age string: a leading integer
// followed by a unit word ("day", "days", "week", "weeks").
var retentionPattern = regexp.MustCompile(`^\s*(\d+)\s*(days?|weeks?)`)

// rawSuffixPattern matches the timestamp suffix the rotating writer appends
// to a backup file: ".<YYYY>-<MM>-<DD>_<HH>-<MM>-<SS>_<microseconds>".
var rawSuffixPattern = regexp.MustCompile(`\.(\d{4})-(\d{2})-(\d{2})_\d{2}-\d{2}-\d{2}_\d+$`)

// ParseDays parses a human-readable retention age ("10 days", "2 weeks")
// into a day count. Strings that do not match the expected form fall back
// to DefaultDays rather than failing: retention is best-effort housekeeping
// and a bad config value must not take the logging path down with it.
func ParseDays(retention string) int {
	m := retentionPattern.FindStringSubmatch(retention)
	if m == nil {
		return DefaultDays
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Only reachable for values that overflow int.
		return DefaultDays
	}

	if strings.HasPrefix(m[2], "week") {
		return n * 7
	}
	return n
}

// CanonicalName converts a raw rotated backup path into its canonical
// dated form:
//
//	/logs/app.log.2026-02-06_00-00-00_000000  ->  /logs/app_20260206.log
//
// Paths whose tail does not carry the rotation timestamp suffix are
// returned unchanged; they are either already canonical or foreign files
// that rotation housekeeping must not touch. This is a pure path
// transform, no file I/O happens here.
func CanonicalName(rawPath string) string {
	base := filepath.Base(rawPath)

	loc := rawSuffixPattern.FindStringSubmatchIndex(base)
	if loc == nil {
		return rawPath
	}

	m := rawSuffixPattern.FindStringSubmatch(base)
	year, month, day := m[1], m[2], m[3]

	// Everything before the matched suffix is the original "stem+ext"
	// of the active log file.
	original := base[:loc[0]]
	ext := filepath.Ext(original)
	stem := strings.TrimSuffix(original, ext)

	return filepath.Join(filepath.Dir(rawPath), fmt.Sprintf("%s_%s%s%s%s", stem, year, month, day, ext))
}
