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

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "APP_"

// Option adjusts how Load finds its files.
type Option func(*loader)

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

type loader struct {
	dir string
	k   *koanf.Koanf
}

// Load builds the configuration for profile. Later sources win:
//
//	built-in defaults < configs/base.yaml < configs/<profile>.yaml < APP_* env
//
// An env name is matched against the keys already known, so underscores
// inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT       → server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS → client.retry.max_attempts
//	APP_ANTISPAM_MIN_INTERVAL     → antispam.min_interval
//	APP_CATALOG_SOURCE            → catalog.source
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: "configs", k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	steps := []struct {
		what string
		run  func() error
	}{
		{"defaults", l.defaults},
		{"base config", func() error { return l.yamlFile("base") }},
		{profile + " config", func() error { return l.yamlFile(profile) }},
		{"environment", l.environment},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", step.what, err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

func (l *loader) defaults() error {
	for key, value := range defaults() {
		if err := l.k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) yamlFile(name string) error {
	path := filepath.Join(l.dir, name+".yaml")
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (l *loader) environment() error {
	known := make(map[string]string, len(l.k.Keys()))
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return l.k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(name, value string) (string, any) {
			flat := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
			if key, ok := known[flat]; ok {
				return key, value
			}
			return strings.ReplaceAll(flat, "_", "."), value
		},
	}), nil)
}

// checkProfile rejects names that could escape the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare name", profile)
	}
	return nil
}
