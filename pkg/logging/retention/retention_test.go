package retention

import (
	"testing"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		name      string
		retention string
		want      int
	}{
		{name: "ten days", retention: "10 days", want: 10},
		{name: "single day", retention: "1 day", want: 1},
		{name: "two weeks", retention: "2 weeks", want: 14},
		{name: "single week", retention: "1 week", want: 7},
		{name: "no space before unit", retention: "3days", want: 3},
		{name: "leading whitespace", retention: "  5 days", want: 5},
		{name: "malformed", retention: "invalid", want: DefaultDays},
		{name: "missing unit", retention: "10", want: DefaultDays},
		{name: "negative number", retention: "-3 days", want: DefaultDays},
		{name: "unit only", retention: "days", want: DefaultDays},
		{name: "empty", retention: "", want: DefaultDays},
		{name: "unknown unit", retention: "10 months", want: DefaultDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDays(tt.retention); got != tt.want {
				t.Errorf("ParseDays(%q) = %d, want %d", tt.retention, got, tt.want)
			}
		})
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "simple rotated file",
			raw:  "/logs/app.log.2026-02-06_00-00-00_000000",
			want: "/logs/app_20260206.log",
		},
		{
			name: "stem containing underscore",
			raw:  "/logs/app_batch.log.2026-01-15_23-59-59_999999",
			want: "/logs/app_batch_20260115.log",
		},
		{
			name: "active file untouched",
			raw:  "/logs/app.log",
			want: "/logs/app.log",
		},
		{
			name: "already canonical",
			raw:  "/logs/app_20260206.log",
			want: "/logs/app_20260206.log",
		},
		{
			name: "relative path",
			raw:  "app.log.2026-02-06_12-30-45_123456",
			want: "app_20260206.log",
		},
		{
			name: "truncated timestamp untouched",
			raw:  "/logs/app.log.2026-02-06_00-00-00",
			want: "/logs/app.log.2026-02-06_00-00-00",
		},
		{
			name: "no extension",
			raw:  "/logs/output.2026-03-01_08-15-00_000001",
			want: "/logs/output_20260301",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalName(tt.raw); got != tt.want {
				t.Errorf("CanonicalName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
