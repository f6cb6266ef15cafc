package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

var backupPattern = regexp.MustCompile(`^app\.log\.\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}_\d{6}$`)

func TestRotatingFile_SizeRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	var rotated []string
	rf, err := OpenRotatingFile(path, RotateConfig{MaxBytes: 10})
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}
	defer rf.Close()
	rf.OnRotate = func(paths []string) { rotated = append(rotated, paths...) }

	if _, err := rf.Write([]byte("0123456789")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	// This write crosses the threshold and must trigger a rotation.
	if _, err := rf.Write([]byte("x")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if len(rotated) != 1 {
		t.Fatalf("expected 1 rotated file, got %d", len(rotated))
	}

	name := filepath.Base(rotated[0])
	if !backupPattern.MatchString(name) {
		t.Errorf("backup name %q does not match the timestamp pattern", name)
	}

	backup, err := os.ReadFile(rotated[0])
	if err != nil {
		t.Fatalf("ReadFile(backup) failed: %v", err)
	}
	if string(backup) != "0123456789" {
		t.Errorf("backup content = %q, want %q", backup, "0123456789")
	}

	active, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(active) failed: %v", err)
	}
	if string(active) != "x" {
		t.Errorf("active content = %q, want %q", active, "x")
	}
}

func TestRotatingFile_DailyRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	rf, err := OpenRotatingFile(path, RotateConfig{Daily: true})
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}
	defer rf.Close()

	var rotated []string
	rf.OnRotate = func(paths []string) { rotated = append(rotated, paths...) }

	if _, err := rf.Write([]byte("yesterday\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Advance the injected clock past midnight.
	rf.now = func() time.Time { return time.Now().AddDate(0, 0, 1) }

	if _, err := rf.Write([]byte("today\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if len(rotated) != 1 {
		t.Fatalf("expected 1 rotated file, got %d", len(rotated))
	}

	active, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(active) failed: %v", err)
	}
	if string(active) != "today\n" {
		t.Errorf("active content = %q, want %q", active, "today\n")
	}
}

func TestRotatingFile_EmptyFileNeverRotates(t *testing.T) {
	dir := t.TempDir()
	rf, err := OpenRotatingFile(filepath.Join(dir, "app.log"), RotateConfig{MaxBytes: 4})
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}
	defer rf.Close()

	rotations := 0
	rf.OnRotate = func([]string) { rotations++ }

	// A single oversized write on an empty file goes through unrotated.
	if _, err := rf.Write([]byte("oversized record")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if rotations != 0 {
		t.Errorf("empty file rotated %d times, want 0", rotations)
	}

	if err := rf.Rotate(); err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	if rotations != 1 {
		t.Errorf("forced rotation count = %d, want 1", rotations)
	}
}

func TestRotatingFile_AppendsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	rf, err := OpenRotatingFile(path, RotateConfig{})
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}
	if _, err := rf.Write([]byte("first\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	rf, err = OpenRotatingFile(path, RotateConfig{})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer rf.Close()
	if _, err := rf.Write([]byte("second\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "first\nsecond\n" {
		t.Errorf("content = %q, want %q", content, "first\nsecond\n")
	}
}

func TestRotatingFile_WriteAfterClose(t *testing.T) {
	rf, err := OpenRotatingFile(filepath.Join(t.TempDir(), "app.log"), RotateConfig{})
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := rf.Write([]byte("late")); err == nil {
		t.Error("Write after Close succeeded, want error")
	}
}

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	logger, err := New(Config{
		Level:  "info",
		Format: "json",
		File:   path,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	logger.Info("hello", "key", "value")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"hello"`) {
		t.Errorf("log file missing record, content = %q", content)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger, err := New(Config{Level: "info", Format: "text"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled at info level")
	}

	logger.SetLevel("debug")
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug not enabled after SetLevel(debug)")
	}

	// Unknown levels are ignored.
	logger.SetLevel("chatty")
	if logger.Level().String() != "DEBUG" {
		t.Errorf("level changed on unknown string: %v", logger.Level())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "debug", want: "DEBUG"},
		{in: "info", want: "INFO"},
		{in: "", want: "INFO"},
		{in: "warn", want: "WARN"},
		{in: "WARNING", want: "WARN"},
		{in: "error", want: "ERROR"},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if level.String() != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, level, tt.want)
		}
	}
}
