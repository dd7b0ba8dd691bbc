package config

import (
	"errors"
	"fmt"
	"slices"
)

// minSecretSize is the shortest accepted attempt-token signing key.
const minSecretSize = 32

// problems collects every failed rule so Validate reports them together.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of %v; got %q", key, allowed, got)
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var p problems

	p.check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	p.check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")
	c.Server.RateLimit.validate(&p, "server.rate_limit")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text")

	p.check(c.Client.BaseURL != "" || c.Catalog.Source != CatalogSourceRemote,
		"client.base_url must not be empty when catalog source is remote")
	p.check(c.Client.Timeout > 0, "client.timeout must be positive")
	p.check(c.Client.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", c.Client.Retry.MaxAttempts)
	p.check(c.Client.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", c.Client.Retry.Multiplier)
	p.check(c.Client.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", c.Client.CircuitBreaker.MaxFailures)
	c.Client.RateLimit.validate(&p, "client.rate_limit")

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, "stdout", "otlp")
		p.check(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	p.oneOf("catalog.source", c.Catalog.Source, CatalogSourceEmbedded, CatalogSourceDir, CatalogSourceRemote)
	p.check(c.Catalog.Source != CatalogSourceDir || c.Catalog.Dir != "",
		"catalog.dir must not be empty when source is dir")

	a := c.Antispam
	p.check(a.MinInterval > 0, "antispam.min_interval must be positive")
	p.check(a.TokenTTL > a.MinInterval, "antispam.token_ttl must exceed antispam.min_interval, got %v", a.TokenTTL)
	p.check(a.Issuer != "", "antispam.issuer must not be empty")
	p.check(a.Secret == "" || len(a.Secret) >= minSecretSize,
		"antispam.secret must be at least %d bytes when set", minSecretSize)

	p.check(c.Timing.RegistrationDelay >= 0, "timing.registration_delay must not be negative")
	p.check(c.Timing.AlertDismiss > 0, "timing.alert_dismiss must be positive")

	return errors.Join(p...)
}

func (rl RateLimitConfig) validate(p *problems, key string) {
	p.check(rl.RequestsPerSecond >= 0, "%s.requests_per_second must not be negative, got %g", key, rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond <= 0 || rl.BurstSize >= 1,
		"%s.burst_size must be >= 1 when rate limiting, got %d", key, rl.BurstSize)
}
