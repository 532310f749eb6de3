package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Stores.validate(),
		c.Auth.validate(),
		c.Orchestrator.validate(),
		c.Blob.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoresConfig) validate() error {
	switch s.Mode {
	case "memory":
		return nil
	case "http":
		return errors.Join(
			s.Accounts.validate("stores.accounts"),
			s.Teams.validate("stores.teams"),
			s.Tasks.validate("stores.tasks"),
		)
	default:
		return fmt.Errorf("stores.mode must be one of: http, memory; got %q", s.Mode)
	}
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when limiting", prefix))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if a.Issuer == "" {
		errs = append(errs, errors.New("auth.issuer must not be empty"))
	}
	if a.Audience == "" {
		errs = append(errs, errors.New("auth.audience must not be empty"))
	}

	return errors.Join(errs...)
}

func (o *OrchestratorConfig) validate() error {
	var errs []error

	if o.StepTimeout <= 0 {
		errs = append(errs, errors.New("orchestrator.step_timeout must be positive"))
	}
	if o.CompensationTimeout <= 0 {
		errs = append(errs, errors.New("orchestrator.compensation_timeout must be positive"))
	}
	if o.TeamScanWorkers < 1 {
		errs = append(errs, fmt.Errorf("orchestrator.team_scan_workers must be >= 1, got %d", o.TeamScanWorkers))
	}

	return errors.Join(errs...)
}

func (b *BlobConfig) validate() error {
	var errs []error

	if b.Root == "" {
		errs = append(errs, errors.New("blob.root must not be empty"))
	}
	if b.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("blob.max_upload_bytes must be positive"))
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
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
