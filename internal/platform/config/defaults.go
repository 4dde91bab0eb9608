package config

const (
	defaultCheckWorkers = 4
	maxCheckWorkers     = 256
)

// defaults returns the values loaded before any file. Every key is listed so
// that env overrides resolve even when no YAML file sets it.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "dddcheck",

		"messages.locale":   "en",
		"messages.fallback": "en",
		"messages.catalogs": []string{},

		"check.workers": defaultCheckWorkers,
		"check.timeout": "30s",
	}
}
