// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
// Secret material is read separately from the environment (see LoadSecrets).
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	Stores       StoresConfig       `koanf:"stores"`
	Auth         AuthConfig         `koanf:"auth"`
	Orchestrator OrchestratorConfig `koanf:"orchestrator"`
	Blob         BlobConfig         `koanf:"blob"`
	RecordStore  RecordStoreConfig  `koanf:"record_store"`
	Telemetry    TelemetryConfig    `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoresConfig selects how the three stores are reached. Mode "http" uses
// one ClientConfig per store; mode "memory" keeps everything in process and
// is meant for local development and demos.
type StoresConfig struct {
	Mode     string       `koanf:"mode"`
	Accounts ClientConfig `koanf:"accounts"`
	Teams    ClientConfig `koanf:"teams"`
	Tasks    ClientConfig `koanf:"tasks"`
}

// ClientConfig holds downstream HTTP client settings for one store.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side token bucket settings.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// AuthConfig holds token verification settings. The signing key is a
// secret and lives in Secrets, not here.
type AuthConfig struct {
	Issuer   string `koanf:"issuer"`
	Audience string `koanf:"audience"`
}

// OrchestratorConfig bounds the multi-store operations.
type OrchestratorConfig struct {
	StepTimeout         time.Duration `koanf:"step_timeout"`
	CompensationTimeout time.Duration `koanf:"compensation_timeout"`
	TeamScanWorkers     int           `koanf:"team_scan_workers"`
}

// BlobConfig holds attachment storage settings.
type BlobConfig struct {
	Root           string `koanf:"root"`
	MaxUploadBytes int64  `koanf:"max_upload_bytes"`
}

// RecordStoreConfig holds settings for the development record store server.
type RecordStoreConfig struct {
	Path string `koanf:"path"`
	Port int    `koanf:"port"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
