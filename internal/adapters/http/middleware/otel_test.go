package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
)

// These tests replace the global TracerProvider and so do not run in parallel.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter
}

// campusRouter mounts OpenTelemetry the way NewRouter does.
func campusRouter(metrics *telemetry.Metrics, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	reply := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(status) }
	r.Post("/api/v1/forms/{formId}/submit", reply)
	r.Get("/api/v1/catalogs/{catalog}/{key}", reply)
	return r
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		status     int
		wantName   string
		wantRoute  string
		wantStatus codes.Code
	}{
		{
			name:      "form submit named by route",
			method:    http.MethodPost,
			target:    "/api/v1/forms/contactForm/submit",
			status:    http.StatusOK,
			wantName:  "HTTP POST /api/v1/forms/{formId}/submit",
			wantRoute: "/api/v1/forms/{formId}/submit",
		},
		{
			name:      "catalog miss is not a span error",
			method:    http.MethodGet,
			target:    "/api/v1/catalogs/events/x",
			status:    http.StatusNotFound,
			wantName:  "HTTP GET /api/v1/catalogs/{catalog}/{key}",
			wantRoute: "/api/v1/catalogs/{catalog}/{key}",
		},
		{
			name:       "server failure marks span",
			method:     http.MethodGet,
			target:     "/api/v1/catalogs/clubs/IEEE",
			status:     http.StatusBadGateway,
			wantName:   "HTTP GET /api/v1/catalogs/{catalog}/{key}",
			wantRoute:  "/api/v1/catalogs/{catalog}/{key}",
			wantStatus: codes.Error,
		},
		{
			name:     "unrouted path keeps raw name",
			method:   http.MethodGet,
			target:   "/nowhere",
			status:   http.StatusNotFound,
			wantName: "HTTP GET /nowhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := setupTracer(t)
			campusRouter(nil, tt.status).ServeHTTP(httptest.NewRecorder(),
				httptest.NewRequest(tt.method, tt.target, http.NoBody))

			spans := exporter.GetSpans().Snapshots()
			if len(spans) != 1 {
				t.Fatalf("got %d spans, want 1", len(spans))
			}
			s := spans[0]
			if s.Name() != tt.wantName {
				t.Errorf("span name = %q, want %q", s.Name(), tt.wantName)
			}
			attrs := spanAttrs(s)
			if got := attrs["http.status_code"].AsInt64(); got != int64(tt.status) {
				t.Errorf("http.status_code = %d, want %d", got, tt.status)
			}
			if got := attrs["http.route"].AsString(); got != tt.wantRoute {
				t.Errorf("http.route = %q, want %q", got, tt.wantRoute)
			}
			if s.Status().Code != tt.wantStatus {
				t.Errorf("span status = %v, want %v", s.Status().Code, tt.wantStatus)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := setupTracer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/registrationForm/submit", http.NoBody)
	req.Header.Set("Traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	campusRouter(nil, http.StatusOK).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the incoming one", got)
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	setupTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	h := campusRouter(metrics, http.StatusTooManyRequests)
	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(),
			httptest.NewRequest(http.MethodPost, "/api/v1/forms/contactForm/submit", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("request total data = %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				if route.AsString() != "/api/v1/forms/{formId}/submit" || result.AsString() != "error" {
					t.Errorf("data point attrs = %v", dp.Attributes.ToSlice())
				}
				total += dp.Value
			}
		}
	}
	if total != 3 {
		t.Errorf("http.server.request.total = %d, want 3", total)
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	setupTracer(t)

	rec := httptest.NewRecorder()
	campusRouter(nil, http.StatusOK).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/catalogs/programs/civil", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
