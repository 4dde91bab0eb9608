package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultEnvPrefix = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	envPrefix string
	overlays  []string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithEnvPrefix replaces the APP_ prefix of environment overrides.
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) { o.envPrefix = prefix }
}

// WithOverlay loads an extra YAML file after the profile. Overlays apply in
// the order given and lose to environment variables.
func WithOverlay(path string) Option {
	return func(o *loadOptions) {
		if path != "" {
			o.overlays = append(o.overlays, path)
		}
	}
}

// Load builds the configuration for profile from these layers, later ones
// winning:
//
//	defaults -> base.yaml -> {profile}.yaml -> overlays -> env
//
// Env names are matched against the keys already loaded, so a key holding an
// underscore stays intact:
//
//	APP_CHECK_WORKERS            -> check.workers
//	APP_TELEMETRY_SERVICE_NAME   -> telemetry.service_name
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	files := append([]string{
		filepath.Join(o.configDir, "base.yaml"),
		filepath.Join(o.configDir, profile+".yaml"),
	}, o.overlays...)
	for _, path := range files {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(envProvider(o.envPrefix, k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func envProvider(prefix string, known []string) koanf.Provider {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, prefix))
			if dotted, ok := lookup[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
