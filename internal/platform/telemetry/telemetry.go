// Package telemetry sets up OpenTelemetry tracing and metrics for the
// service and declares its instruments and label keys.
//
//	tp, _ := telemetry.InitTracer(ctx, "campus-web", telemetry.ExporterOTLP, "http://otel-collector:4318")
//	mp, _ := telemetry.InitMeter(ctx, "campus-web", telemetry.ExporterOTLP, "http://otel-collector:4318")
//	metrics, _ := telemetry.NewMetrics(mp)
//	metrics.CatalogLookupTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrCatalog.String("clubs")))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Exporter selection errors.
var (
	ErrUnsupportedExporter = errors.New("unsupported exporter")
	ErrMissingEndpoint     = errors.New("otlp exporter requires an endpoint")
)

// TracerName scopes spans and metrics created by this service.
const TracerName = "github.com/jsamuelsen11/campus-web"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrFormRole    = attribute.Key("form.role")
	AttrReason      = attribute.Key("antispam.reason")
	AttrCatalog     = attribute.Key("catalog.name")
	AttrFound       = attribute.Key("catalog.found")
)

// Metrics is the set of instruments the service records. Build it with
// NewMetrics.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	FormSubmissionTotal    metric.Int64Counter
	AntispamRejectionTotal metric.Int64Counter
	CatalogLookupTotal     metric.Int64Counter
}

// InitTracer installs a global TracerProvider exporting to stdout or to an
// OTLP/HTTP collector at endpoint, plus W3C trace-context and baggage
// propagation. Shut the provider down on exit to flush spans.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", serviceName, err)
	}
	exp, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider with a periodic reader over the
// chosen exporter. Shut it down on exit to flush the last interval.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", serviceName, err)
	}
	exp, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics registers the service's instruments on mp under TracerName.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(TracerName)
	m := &Metrics{}

	histograms := []struct {
		dst  *metric.Float64Histogram
		name string
		desc string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Time spent serving page and API requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Time spent on content service calls, retries included"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Page and API requests served", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Content service calls by outcome", "{request}"},
		{&m.FormSubmissionTotal, "form.submission.total", "Form submissions by role and outcome", "{submission}"},
		{&m.AntispamRejectionTotal, "antispam.rejection.total", "Contact submissions rejected by the anti-spam gate", "{submission}"},
		{&m.CatalogLookupTotal, "catalog.lookup.total", "Catalog dialog lookups by catalog and hit or miss", "{lookup}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		host, plain, err := collector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if plain {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		host, plain, err := collector(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if plain {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
}

// collector splits an OTLP endpoint into the host:port the exporters want
// and whether TLS is off. A bare host:port is taken as plain HTTP.
func collector(endpoint string) (host string, plain bool, err error) {
	if endpoint == "" {
		return "", false, ErrMissingEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
