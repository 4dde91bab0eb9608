// Package config loads dddcheck configuration from YAML files with
// environment variable overrides, layered as
// defaults -> base.yaml -> {profile}.yaml -> APP_* env vars.
package config

import "time"

// Config holds all configuration for the checker.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Messages  MessagesConfig  `koanf:"messages"`
	Check     CheckConfig     `koanf:"check"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// MessagesConfig selects how validation failures are rendered.
type MessagesConfig struct {
	// Locale is used when rendering failures in reports.
	Locale string `koanf:"locale"`
	// Fallback is consulted when Locale has no message for a code.
	Fallback string `koanf:"fallback"`
	// Catalogs lists YAML message catalog files, loaded in order.
	Catalogs []string `koanf:"catalogs"`
}

// CheckConfig bounds a checking run.
type CheckConfig struct {
	Workers int           `koanf:"workers"`
	Timeout time.Duration `koanf:"timeout"`
}
