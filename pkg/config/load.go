package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the base configuration file every config directory
// must contain.
const DefaultFileName = "default.yaml"

// Load reads hierarchical configuration from dir: the required
// default.yaml first, then an optional "{env}.yaml" whose sections
// override the defaults (shallow two-level merge: a section present in
// both files has its keys merged, everything else is replaced).
//
// The loading sequence is:
//  1. Read default.yaml (missing file is an error)
//  2. Merge {env}.yaml over it, if present
//  3. Apply default values
//  4. Apply environment variable overrides
//  5. Validate the final configuration
func Load(dir, env string) (*Config, error) {
	defaultPath := filepath.Join(dir, DefaultFileName)
	base, err := readYAMLMap(defaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if env != "" {
		envPath := filepath.Join(dir, env+".yaml")
		overlay, err := readYAMLMap(envPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load %s config: %w", env, err)
			}
		} else {
			mergeSections(base, overlay)
		}
	}

	merged, err := yaml.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode merged config: %w", err)
	}

	cfg := &Config{}
	// Daily rotation defaults to true; it must be set before unmarshalling
	// because "false" and "unset" look the same afterwards.
	cfg.Logging.Rotation.Daily = true

	if err := yaml.Unmarshal(merged, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// readYAMLMap reads a YAML file into a generic section map. The os.ReadFile
// error is returned unwrapped so callers can check os.IsNotExist.
func readYAMLMap(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return m, nil
}

// mergeSections merges overlay into base. When a key holds a map in both,
// the overlay's entries are merged into the base map one level deep;
// otherwise the overlay value replaces the base value. This deliberately
// stays shallow: config sections are one level of nesting, and a deeper
// merge would make overrides harder to reason about.
func mergeSections(base, overlay map[string]interface{}) {
	for key, value := range overlay {
		overlayMap, overlayOK := value.(map[string]interface{})
		baseMap, baseOK := base[key].(map[string]interface{})
		if overlayOK && baseOK {
			for k, v := range overlayMap {
				baseMap[k] = v
			}
			continue
		}
		base[key] = value
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Variables follow the GANTRY_SECTION_FIELD convention;
// the Telegram credentials additionally honor the conventional
// TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID names so secrets can stay out
// of config files.
func applyEnvOverrides(cfg *Config) {
	// App overrides
	if val := os.Getenv("GANTRY_APP_NAME"); val != "" {
		cfg.App.Name = val
	}
	if val := os.Getenv("GANTRY_APP_DEBUG"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.App.Debug = b
		}
	}

	// Logging overrides
	if val := os.Getenv("GANTRY_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("GANTRY_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("GANTRY_LOGGING_DIR"); val != "" {
		cfg.Logging.Dir = val
	}
	if val := os.Getenv("GANTRY_LOGGING_RETENTION_MAX_AGE"); val != "" {
		cfg.Logging.Retention.MaxAge = val
	}
	if val := os.Getenv("GANTRY_LOGGING_RETENTION_SCHEDULE"); val != "" {
		cfg.Logging.Retention.Schedule = val
	}

	// Telegram overrides
	if val := os.Getenv("GANTRY_TELEGRAM_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telegram.Enabled = b
		}
	}
	if val := os.Getenv("TELEGRAM_BOT_TOKEN"); val != "" {
		cfg.Telegram.BotToken = val
	}
	if val := os.Getenv("TELEGRAM_CHAT_ID"); val != "" {
		cfg.Telegram.ChatID = val
	}

	// Server overrides
	if val := os.Getenv("GANTRY_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}

	// Jobs overrides
	if val := os.Getenv("GANTRY_JOBS_PATH"); val != "" {
		cfg.Jobs.Path = val
	}
}
