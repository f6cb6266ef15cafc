package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. It implements the error interface and provides access to
// all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var validLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

var validFormats = map[string]bool{
	"text": true, "json": true,
}

// Validate validates the entire configuration and returns a
// ValidationError if any rules fail. All errors are collected and
// returned together.
//
// Note that logging.retention.max_age is deliberately NOT validated: an
// unparsable retention age falls back to the default at use, a documented
// policy so a sloppy retention string can never keep the application from
// starting.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.App.Name == "" {
		errs = append(errs, FieldError{"app.name", "must not be empty"})
	}
	if cfg.App.Interval <= 0 {
		errs = append(errs, FieldError{"app.interval", "must be positive"})
	}

	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		errs = append(errs, FieldError{"logging.level",
			fmt.Sprintf("unknown level %q (expected debug, info, warn or error)", cfg.Logging.Level)})
	}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{"logging.format",
			fmt.Sprintf("unknown format %q (expected text or json)", cfg.Logging.Format)})
	}
	if cfg.Logging.Rotation.MaxSizeMB <= 0 {
		errs = append(errs, FieldError{"logging.rotation.max_size_mb", "must be positive"})
	}
	if cfg.Logging.Retention.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Logging.Retention.Schedule); err != nil {
			errs = append(errs, FieldError{"logging.retention.schedule",
				fmt.Sprintf("invalid cron expression: %v", err)})
		}
	}

	if cfg.Telegram.Enabled && cfg.Telegram.BotToken == "" {
		errs = append(errs, FieldError{"telegram.bot_token",
			"required when telegram is enabled (set TELEGRAM_BOT_TOKEN)"})
	}
	if cfg.Telegram.Enabled && cfg.Telegram.ChatID == "" {
		errs = append(errs, FieldError{"telegram.chat_id",
			"required when telegram is enabled (set TELEGRAM_CHAT_ID)"})
	}

	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		errs = append(errs, FieldError{"server.listen_address",
			fmt.Sprintf("invalid address %q: expected host:port", cfg.Server.ListenAddress)})
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, FieldError{"server.shutdown_timeout", "must be positive"})
	}

	if cfg.HTTP.Timeout <= 0 {
		errs = append(errs, FieldError{"http.timeout", "must be positive"})
	}
	if cfg.HTTP.MaxRetries < 0 {
		errs = append(errs, FieldError{"http.max_retries", "must not be negative"})
	}

	if cfg.Jobs.Path == "" {
		errs = append(errs, FieldError{"jobs.path", "must not be empty"})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}
