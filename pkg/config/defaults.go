package config

import "time"

// Default values for configuration fields.
const (
	// App defaults
	DefaultAppName     = "gantry"
	DefaultAppVersion  = "0.1.0"
	DefaultAppInterval = Duration(5 * time.Second)

	// Logging defaults
	DefaultLoggingLevel      = "info"
	DefaultLoggingFormat     = "text"
	DefaultLoggingDir        = "logs"
	DefaultRotationMaxSizeMB = 100
	DefaultRetentionMaxAge   = "10 days"
	DefaultRetentionSchedule = "0 3 * * *"

	// Telegram defaults
	DefaultTelegramAPIBaseURL = "https://api.telegram.org"

	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = Duration(30 * time.Second)
	DefaultWriteTimeout    = Duration(30 * time.Second)
	DefaultIdleTimeout     = Duration(120 * time.Second)
	DefaultShutdownTimeout = Duration(30 * time.Second)

	// HTTP client defaults
	DefaultHTTPTimeout        = Duration(30 * time.Second)
	DefaultHTTPConnectTimeout = Duration(5 * time.Second)
	DefaultHTTPMaxRetries     = 3

	// Jobs defaults
	DefaultJobsPath = "data/jobs.db"
)

// ApplyDefaults applies default values to a Config struct. It sets
// defaults for any fields that have zero values and is idempotent.
//
// Rotation.Daily is a special case: it defaults to true, so it is set in
// Load before unmarshalling rather than here, where "false" and "unset"
// are indistinguishable.
func ApplyDefaults(cfg *Config) {
	// App defaults
	if cfg.App.Name == "" {
		cfg.App.Name = DefaultAppName
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultAppVersion
	}
	if cfg.App.Interval == 0 {
		cfg.App.Interval = DefaultAppInterval
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = DefaultLoggingDir
	}
	if cfg.Logging.Rotation.MaxSizeMB == 0 {
		cfg.Logging.Rotation.MaxSizeMB = DefaultRotationMaxSizeMB
	}
	if cfg.Logging.Retention.MaxAge == "" {
		cfg.Logging.Retention.MaxAge = DefaultRetentionMaxAge
	}
	if cfg.Logging.Retention.Schedule == "" {
		cfg.Logging.Retention.Schedule = DefaultRetentionSchedule
	}

	// Telegram defaults
	if cfg.Telegram.APIBaseURL == "" {
		cfg.Telegram.APIBaseURL = DefaultTelegramAPIBaseURL
	}

	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// HTTP client defaults
	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = DefaultHTTPTimeout
	}
	if cfg.HTTP.ConnectTimeout == 0 {
		cfg.HTTP.ConnectTimeout = DefaultHTTPConnectTimeout
	}
	if cfg.HTTP.MaxRetries == 0 {
		cfg.HTTP.MaxRetries = DefaultHTTPMaxRetries
	}

	// Jobs defaults
	if cfg.Jobs.Path == "" {
		cfg.Jobs.Path = DefaultJobsPath
	}
}
