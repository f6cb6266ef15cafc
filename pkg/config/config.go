package config

// Config is the root configuration structure for Gantry. It contains all
// configuration sections for the application identity, logging, the
// Telegram notification sink, the sample HTTP API server, the outbound
// HTTP client, and the job store.
type Config struct {
	// App contains application identity and daemon settings.
	App AppConfig `yaml:"app"`

	// Logging contains log level, format, file output, rotation and
	// retention settings.
	Logging LoggingConfig `yaml:"logging"`

	// Telegram contains the notification sink settings.
	Telegram TelegramConfig `yaml:"telegram"`

	// Server contains the sample HTTP API server settings.
	Server ServerConfig `yaml:"server"`

	// HTTP contains outbound HTTP client settings (timeouts, retries).
	HTTP HTTPConfig `yaml:"http"`

	// Jobs contains the job store settings.
	Jobs JobsConfig `yaml:"jobs"`
}

// AppConfig contains application identity and daemon settings.
type AppConfig struct {
	// Name is the application name. It also determines the log file
	// stems: "{name}.log" in app mode, "{name}_batch.log" in batch mode.
	// Default: "gantry"
	Name string `yaml:"name"`

	// Version is the application version reported by the API and CLI.
	// Default: "0.1.0"
	Version string `yaml:"version"`

	// Debug enables debug behavior in the sample API response.
	// Default: false
	Debug bool `yaml:"debug"`

	// Interval is the heartbeat interval of the app-mode daemon loop.
	// Default: 5s
	Interval Duration `yaml:"interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format ("text", "json").
	// Default: "text"
	Format string `yaml:"format"`

	// Dir is the directory for log files.
	// Default: "logs"
	Dir string `yaml:"dir"`

	// AddSource includes file and line number in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// Rotation controls when the active log file rotates.
	Rotation RotationConfig `yaml:"rotation"`

	// Retention controls pruning of rotated log files.
	Retention RetentionConfig `yaml:"retention"`
}

// RotationConfig controls log file rotation.
type RotationConfig struct {
	// MaxSizeMB rotates the active file before it grows past this size.
	// Default: 100
	MaxSizeMB int `yaml:"max_size_mb"`

	// Daily additionally rotates on the first write of a new calendar day.
	// Default: true
	Daily bool `yaml:"daily"`
}

// RetentionConfig controls pruning of rotated log files.
type RetentionConfig struct {
	// MaxAge is a human-readable retention age, e.g. "10 days" or
	// "2 weeks". Values that do not parse fall back to "10 days"; this
	// permissive fallback is deliberate policy, retention must never be
	// the reason the application fails to start.
	// Default: "10 days"
	MaxAge string `yaml:"max_age"`

	// Schedule is a cron expression for background pruning in app mode,
	// in addition to the pruning that runs at each rotation. Empty
	// disables scheduled pruning.
	// Default: "0 3 * * *" (daily at 3 AM)
	Schedule string `yaml:"schedule"`
}

// TelegramConfig contains the Telegram notification sink settings.
type TelegramConfig struct {
	// Enabled controls whether notifications are sent at all.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// BotToken is the Telegram bot token. Prefer supplying it through
	// the TELEGRAM_BOT_TOKEN environment variable.
	BotToken string `yaml:"bot_token"`

	// ChatID is the chat the bot posts to. Can also be supplied through
	// TELEGRAM_CHAT_ID.
	ChatID string `yaml:"chat_id"`

	// APIBaseURL is the Telegram Bot API base URL. Only changed in tests.
	// Default: "https://api.telegram.org"
	APIBaseURL string `yaml:"api_base_url"`
}

// ServerConfig contains the sample HTTP API server settings.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire
	// request, including the body.
	// Default: 30s
	ReadTimeout Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response.
	// Default: 30s
	WriteTimeout Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request when
	// keep-alives are enabled.
	// Default: 120s
	IdleTimeout Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown before in-flight requests are dropped.
	// Default: 30s
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// HTTPConfig contains outbound HTTP client settings.
type HTTPConfig struct {
	// Timeout is the total per-request timeout.
	// Default: 30s
	Timeout Duration `yaml:"timeout"`

	// ConnectTimeout is the TCP connect timeout.
	// Default: 5s
	ConnectTimeout Duration `yaml:"connect_timeout"`

	// MaxRetries is the number of retry attempts for transient failures.
	// Default: 3
	MaxRetries int `yaml:"max_retries"`
}

// JobsConfig contains the job store settings.
type JobsConfig struct {
	// Path is the SQLite database file path.
	// Default: "data/jobs.db"
	Path string `yaml:"path"`
}
