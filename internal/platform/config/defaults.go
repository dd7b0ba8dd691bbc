package config

// defaults seeds the first configuration layer. Every key a YAML file or
// APP_ variable may set appears here, which is also how the environment
// layer learns which keys exist.
func defaults() map[string]any {
	return map[string]any{
		// inbound HTTP
		"server.host":                           "0.0.0.0",
		"server.port":                           8080,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          0,

		"log.level":  "info",
		"log.format": "json",

		// content service
		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              3,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                2.0,
		"client.circuit_breaker.max_failures":    5,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": 1,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "campus-web",

		"site.dir":       "",
		"catalog.source": CatalogSourceEmbedded,
		"catalog.dir":    "",

		// contact form gate and registration timing
		"antispam.min_interval":     "2s",
		"antispam.secret":           "",
		"antispam.token_ttl":        "1h",
		"antispam.issuer":           "campus-web",
		"timing.registration_delay": "2s",
		"timing.alert_dismiss":      "5s",
	}
}
