// Package config provides hierarchical YAML configuration for Gantry.
//
// Configuration lives in a directory of YAML files: default.yaml carries
// the base settings and an optional per-environment file (dev.yaml,
// prod.yaml, ...) overrides individual sections. Environment variables
// take precedence over both; they follow the GANTRY_SECTION_FIELD naming
// convention, with TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID honored
// additionally so credentials never need to live in files.
//
// Loading applies defaults and validates the result; a configuration that
// loads successfully is ready to use. The one deliberate exception is the
// retention age string, which is permissive by policy (see
// pkg/logging/retention).
package config
