package main

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/campus-web/internal/platform/config"
	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
)

// providers holds the OpenTelemetry SDK providers to flush on exit. With
// telemetry disabled both are nil and metrics records into a no-op meter.
type providers struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*providers, error) {
	if !cfg.Enabled {
		m, err := telemetry.NewMetrics(noop.NewMeterProvider())
		return &providers{metrics: m}, err
	}

	p := &providers{}
	var err error
	if p.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, err
	}
	if p.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, errors.Join(err, p.shutdown(ctx))
	}
	if p.metrics, err = telemetry.NewMetrics(p.meter); err != nil {
		return nil, errors.Join(err, p.shutdown(ctx))
	}
	return p, nil
}

func (p *providers) shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		errs = append(errs, p.tracer.Shutdown(ctx))
	}
	if p.meter != nil {
		errs = append(errs, p.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
