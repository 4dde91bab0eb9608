package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Messages.validate(),
		c.Check.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if strings.TrimSpace(t.ServiceName) == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (m *MessagesConfig) validate() error {
	var errs []error

	if _, err := language.Parse(m.Locale); err != nil {
		errs = append(errs, fmt.Errorf("messages.locale %q is not a valid language tag: %w", m.Locale, err))
	}
	if _, err := language.Parse(m.Fallback); err != nil {
		errs = append(errs, fmt.Errorf("messages.fallback %q is not a valid language tag: %w", m.Fallback, err))
	}
	for i, path := range m.Catalogs {
		if strings.TrimSpace(path) == "" {
			errs = append(errs, fmt.Errorf("messages.catalogs[%d] must not be empty", i))
		}
	}

	return errors.Join(errs...)
}

func (c *CheckConfig) validate() error {
	var errs []error

	if c.Workers < 1 || c.Workers > maxCheckWorkers {
		errs = append(errs, fmt.Errorf("check.workers must be between 1 and %d, got %d", maxCheckWorkers, c.Workers))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("check.timeout must be positive"))
	}

	return errors.Join(errs...)
}
