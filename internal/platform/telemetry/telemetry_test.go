package telemetry_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
)

// Providers install themselves globally, so these tests do not run in
// parallel with each other.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  error
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: telemetry.ErrMissingEndpoint},
		{name: "zipkin", exporter: "zipkin", wantErr: telemetry.ErrUnsupportedExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tp, err := telemetry.InitTracer(ctx, "campus-web-test", tt.exporter, tt.endpoint)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InitTracer() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// No collector runs in unit tests, so flush errors are ignored.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			fields := otel.GetTextMapPropagator().Fields()
			for _, want := range []string{"traceparent", "baggage"} {
				if !slices.Contains(fields, want) {
					t.Errorf("propagator fields = %v, want %q", fields, want)
				}
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  error
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "https://otlp.example.edu"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: telemetry.ErrMissingEndpoint},
		{name: "prometheus", exporter: "prometheus", wantErr: telemetry.ErrUnsupportedExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mp, err := telemetry.InitMeter(ctx, "campus-web-test", tt.exporter, tt.endpoint)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InitMeter() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })

			if _, err := telemetry.NewMetrics(mp); err != nil {
				t.Errorf("NewMetrics() on the initialized provider error = %v", err)
			}
		})
	}
}

func TestNewMetrics_RegistersEveryInstrument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.2)
	m.ClientRequestTotal.Add(ctx, 1)
	m.FormSubmissionTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrFormRole.String("contact")))
	m.AntispamRejectionTotal.Add(ctx, 2, metric.WithAttributes(telemetry.AttrReason.String("too_fast")))
	m.CatalogLookupTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrCatalog.String("programs"),
		telemetry.AttrFound.Bool(true),
	))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var got []string
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != telemetry.TracerName {
			t.Errorf("scope = %q, want %q", sm.Scope.Name, telemetry.TracerName)
		}
		for _, inst := range sm.Metrics {
			got = append(got, inst.Name)
		}
	}
	slices.Sort(got)

	want := []string{
		"antispam.rejection.total",
		"catalog.lookup.total",
		"form.submission.total",
		"http.client.request.duration",
		"http.client.request.total",
		"http.server.request.duration",
		"http.server.request.total",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collected metrics (-want +got):\n%s", diff)
	}
}
