package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-ddd-kit/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Check.Workers != 2 {
		t.Errorf("Check.Workers = %d, want 2", cfg.Check.Workers)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Messages.Locale != "en" {
		t.Errorf("Messages.Locale = %q, want \"en\" from base.yaml", cfg.Messages.Locale)
	}
	if len(cfg.Messages.Catalogs) != 2 {
		t.Errorf("Messages.Catalogs = %v, want two catalogs from base.yaml", cfg.Messages.Catalogs)
	}
	if cfg.Check.Timeout != time.Minute {
		t.Errorf("Check.Timeout = %v, want 1m from base.yaml", cfg.Check.Timeout)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "{}\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want default \"json\"", cfg.Log.Format)
	}
	if cfg.Check.Workers != 4 {
		t.Errorf("Check.Workers = %d, want default 4", cfg.Check.Workers)
	}
	if cfg.Check.Timeout != 30*time.Second {
		t.Errorf("Check.Timeout = %v, want default 30s", cfg.Check.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CHECK_WORKERS", "9")
	t.Setenv("APP_MESSAGES_LOCALE", "fr")
	t.Setenv("APP_TELEMETRY_SERVICE_NAME", "checker-ci")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Check.Workers != 9 {
		t.Errorf("Check.Workers = %d, want 9 (env override)", cfg.Check.Workers)
	}
	if cfg.Messages.Locale != "fr" {
		t.Errorf("Messages.Locale = %q, want \"fr\" (env override)", cfg.Messages.Locale)
	}
	if cfg.Telemetry.ServiceName != "checker-ci" {
		t.Errorf("Telemetry.ServiceName = %q, want \"checker-ci\" (env override)", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_OverlayBeatsProfileLosesToEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "check:\n  workers: 2\n")
	writeFile(t, filepath.Join(dir, "ci.yaml"), "check:\n  workers: 3\n")
	overlay := filepath.Join(dir, "overlay.yaml")
	writeFile(t, overlay, "check:\n  workers: 5\nmessages:\n  locale: fr\n")
	t.Setenv("APP_MESSAGES_LOCALE", "de")

	cfg, err := config.Load("ci", config.WithConfigDir(dir), config.WithOverlay(overlay), config.WithOverlay(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Check.Workers != 5 {
		t.Errorf("Check.Workers = %d, want 5 from overlay", cfg.Check.Workers)
	}
	if cfg.Messages.Locale != "de" {
		t.Errorf("Messages.Locale = %q, want \"de\" from env", cfg.Messages.Locale)
	}
}

func TestLoad_MissingOverlay(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("local", config.WithOverlay("does-not-exist.yaml")); err == nil {
		t.Fatal("Load returned nil error, want error for missing overlay")
	}
}

func TestLoad_CustomEnvPrefix(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("DDD_CHECK_WORKERS", "7")
	t.Setenv("APP_CHECK_WORKERS", "11")

	cfg, err := config.Load("local", config.WithEnvPrefix("DDD_"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Check.Workers != 7 {
		t.Errorf("Check.Workers = %d, want 7 from DDD_ prefix", cfg.Check.Workers)
	}
}

func TestLoad_InvalidEnvFailsValidation(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CHECK_WORKERS", "0")

	if _, err := config.Load("local"); err == nil {
		t.Fatal("Load returned nil error, want validation error for check.workers=0")
	}
}

func TestLoad_BadProfiles(t *testing.T) {
	t.Chdir("../../..")

	for _, profile := range []string{"nonexistent", "", "  ", "../prod", `a\b`, "a..b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(*config.Config) {}, false},
		{"bad log level", func(c *config.Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *config.Config) { c.Log.Format = "xml" }, true},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, true},
		{"unknown exporter ignored when disabled", func(c *config.Config) { c.Telemetry.Exporter = "zipkin" }, false},
		{"empty service name", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.ServiceName = ""
		}, true},
		{"bad locale", func(c *config.Config) { c.Messages.Locale = "not a tag!" }, true},
		{"blank catalog path", func(c *config.Config) { c.Messages.Catalogs = []string{" "} }, true},
		{"zero workers", func(c *config.Config) { c.Check.Workers = 0 }, true},
		{"too many workers", func(c *config.Config) { c.Check.Workers = 10_000 }, true},
		{"zero timeout", func(c *config.Config) { c.Check.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "dddcheck",
		},
		Messages: config.MessagesConfig{
			Locale:   "en",
			Fallback: "en",
			Catalogs: []string{"configs/messages/en.yaml"},
		},
		Check: config.CheckConfig{
			Workers: 4,
			Timeout: 30 * time.Second,
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
