package config

const (
	defaultServerPort      = 8080
	defaultRecordStorePort = 8081

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 20

	defaultTeamScanWorkers = 4
	defaultMaxUploadBytes  = 25 << 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	m := map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"stores.mode": "http",

		"auth.issuer":   "teamtasks",
		"auth.audience": "teamtasks-api",

		"orchestrator.step_timeout":         "3s",
		"orchestrator.compensation_timeout": "5s",
		"orchestrator.team_scan_workers":    defaultTeamScanWorkers,

		"blob.root":             "data/blobs",
		"blob.max_upload_bytes": defaultMaxUploadBytes,

		"record_store.path": "data/records.db",
		"record_store.port": defaultRecordStorePort,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "teamtasks",
	}

	for _, store := range []string{"accounts", "teams", "tasks"} {
		prefix := "stores." + store + "."
		m[prefix+"base_url"] = "http://localhost:8081"
		m[prefix+"timeout"] = "5s"
		m[prefix+"retry.max_attempts"] = defaultRetryMaxAttempts
		m[prefix+"retry.initial_interval"] = "100ms"
		m[prefix+"retry.max_interval"] = "2s"
		m[prefix+"retry.multiplier"] = defaultRetryMultiplier
		m[prefix+"circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
		m[prefix+"circuit_breaker.timeout"] = "30s"
		m[prefix+"circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
		m[prefix+"rate_limit.requests_per_second"] = 0
		m[prefix+"rate_limit.burst_size"] = defaultRateLimitBurst
	}

	return m
}
