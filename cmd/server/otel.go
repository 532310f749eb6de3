package main

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/telemetry"
)

// otelProviders is all nil when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*otelProviders, error) {
	if !cfg.Enabled {
		return &otelProviders{}, nil
	}

	o := &otelProviders{}
	var err error
	if o.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if o.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	if o.metrics, err = telemetry.NewMetrics(o.meter, cfg.ServiceName); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}
