package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatText outputs logs in plain text key=value format.
	FormatText Format = "text"
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = "json"
)

// Config contains configuration for the Logger.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string

	// Format is the output format ("text", "json").
	Format string

	// AddSource includes file and line number in log records.
	AddSource bool

	// File is the active log file path. Empty disables file logging and
	// logs go to stderr only.
	File string

	// Rotation controls when the log file rotates. Ignored when File is
	// empty.
	Rotation RotateConfig

	// OnRotate is handed to the rotating writer; see RotatingFile.OnRotate.
	OnRotate func(rotated []string)
}

// Logger wraps an *slog.Logger together with its runtime-adjustable level
// and the rotating file writer backing it (if any).
type Logger struct {
	*slog.Logger

	level *slog.LevelVar
	file  *RotatingFile
}

// New builds a Logger from cfg. When a file is configured, records are
// written both to stderr and to the rotating file. The returned logger's
// level can be changed at runtime with SetLevel.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	var file *RotatingFile
	w := io.Writer(os.Stderr)
	if cfg.File != "" {
		file, err = OpenRotatingFile(cfg.File, cfg.Rotation)
		if err != nil {
			return nil, err
		}
		file.OnRotate = cfg.OnRotate
		w = io.MultiWriter(os.Stderr, file)
	}

	opts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch Format(cfg.Format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	default:
		if file != nil {
			file.Close()
		}
		return nil, fmt.Errorf("unknown log format: %q", cfg.Format)
	}

	return &Logger{
		Logger: slog.New(handler),
		level:  levelVar,
		file:   file,
	}, nil
}

// SetLevel changes the minimum log level at runtime. Unknown level strings
// are ignored.
func (l *Logger) SetLevel(level string) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return
	}
	l.level.Set(parsed)
}

// Level returns the current minimum log level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// File returns the rotating file writer, or nil for console-only loggers.
func (l *Logger) File() *RotatingFile {
	return l.file
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel converts a level string to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", level)
	}
}
