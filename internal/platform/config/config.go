// Package config loads and validates the campus-web settings from layered
// YAML files and APP_* environment variables. See Load.
package config

import "time"

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Site      SiteConfig      `koanf:"site"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Antispam  AntispamConfig  `koanf:"antispam"`
	Timing    TimingConfig    `koanf:"timing"`
}

// ServerConfig is the inbound listener.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RateLimit throttles API requests per client address.
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig tunes the outbound client used for remote catalogs.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is capped exponential backoff with jitter.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips after MaxFailures consecutive failures and
// probes again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig is a token bucket. Zero RequestsPerSecond turns it off.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// SiteConfig points at the static college site. An empty Dir serves only the
// API and the embedded browser adapter.
type SiteConfig struct {
	Dir string `koanf:"dir"`
}

// Catalog source kinds.
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceDir      = "dir"
	CatalogSourceRemote   = "remote"
)

// CatalogConfig selects where program and club records are read from.
// Remote sources use the Client settings.
type CatalogConfig struct {
	Source string `koanf:"source"`
	Dir    string `koanf:"dir"`
}

// AntispamConfig holds the contact form gate and attempt token settings.
// An empty Secret generates a random key at startup.
type AntispamConfig struct {
	MinInterval time.Duration `koanf:"min_interval"`
	Secret      string        `koanf:"secret"`
	TokenTTL    time.Duration `koanf:"token_ttl"`
	Issuer      string        `koanf:"issuer"`
}

// TimingConfig holds the delays carried by scheduled UI commands.
type TimingConfig struct {
	RegistrationDelay time.Duration `koanf:"registration_delay"`
	AlertDismiss      time.Duration `koanf:"alert_dismiss"`
}
