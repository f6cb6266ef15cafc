package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// RotatingFile is an io.WriteCloser that writes to a single active log
// file and rotates it away when it grows past a size threshold or when the
// calendar day changes. A rotation renames the active file to a timestamped
// backup next to it:
//
//	app.log  ->  app.log.2026-02-06_00-00-00_000000
//
// and reopens a fresh active file. After every rotation the OnRotate
// callback (if set) is invoked synchronously with the backup paths, which
// is where retention housekeeping hooks in.
//
// A RotatingFile assumes it is the only writer to its path.
type RotatingFile struct {
	// OnRotate is called after each rotation with the paths of the files
	// that were just rotated away. It runs inline on the writing
	// goroutine, so it should be quick. Set before the first Write.
	OnRotate func(rotated []string)

	path     string
	maxBytes int64
	daily    bool

	mu   sync.Mutex
	file *os.File
	size int64
	day  string // active file's calendar day, "2006-01-02"
	now  func() time.Time
}

// RotateConfig controls when a RotatingFile rotates.
type RotateConfig struct {
	// MaxBytes rotates the file before a write would push it past this
	// size. Zero disables size-based rotation.
	MaxBytes int64

	// Daily rotates the file on the first write of a new calendar day.
	Daily bool
}

// OpenRotatingFile opens (creating if needed) the active log file at path.
// Parent directories are created.
func OpenRotatingFile(path string, cfg RotateConfig) (*RotatingFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &RotatingFile{
		path:     path,
		maxBytes: cfg.MaxBytes,
		daily:    cfg.Daily,
		now:      time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// open opens the active file for appending and records its current size
// and day marker.
func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	r.file = f
	r.size = info.Size()
	r.day = r.now().Format("2006-01-02")
	return nil
}

// Write appends p to the active file, rotating first if the write would
// cross the size threshold or the day has changed.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	if r.shouldRotate(int64(len(p))) {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// shouldRotate reports whether a write of n bytes requires rotation first.
// An empty active file is never rotated; that would leave a zero-byte
// backup behind on every startup.
func (r *RotatingFile) shouldRotate(n int64) bool {
	if r.size == 0 {
		return false
	}
	if r.maxBytes > 0 && r.size+n > r.maxBytes {
		return true
	}
	if r.daily && r.now().Format("2006-01-02") != r.day {
		return true
	}
	return false
}

// rotate closes the active file, renames it to its timestamped backup name
// and reopens a fresh active file. Callers must hold r.mu.
func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file for rotation: %w", err)
	}
	r.file = nil

	now := r.now()
	backup := fmt.Sprintf("%s.%s_%06d",
		r.path,
		now.Format("2006-01-02_15-04-05"),
		now.Nanosecond()/1000,
	)

	if err := os.Rename(r.path, backup); err != nil {
		// Reopen so logging keeps working even if the rename failed.
		if openErr := r.open(); openErr != nil {
			return openErr
		}
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if err := r.open(); err != nil {
		return err
	}

	if r.OnRotate != nil {
		r.OnRotate([]string{backup})
	}
	return nil
}

// Rotate forces a rotation regardless of size or day, unless the active
// file is empty.
func (r *RotatingFile) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return os.ErrClosed
	}
	if r.size == 0 {
		return nil
	}
	return r.rotate()
}

// Path returns the active file path.
func (r *RotatingFile) Path() string {
	return r.path
}

// Close closes the active file. Subsequent writes fail.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
