package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/campus-web/internal/app/fanout"
	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// Compile-time checks.
var (
	_ ports.CatalogService = (*CatalogService)(nil)
	_ ports.HealthChecker  = (*CatalogService)(nil)
)

// maxConcurrentLoads caps the number of catalogs fetched at once.
const maxConcurrentLoads = 4

// LoadCatalogs reads every named catalog from the source concurrently.
// All catalogs must load; failures are joined into a single error.
func LoadCatalogs(ctx context.Context, src ports.CatalogSource, names []catalog.Name, logger *slog.Logger) (map[catalog.Name]*catalog.Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := fanout.Run(ctx, maxConcurrentLoads, names, src.Load)

	loaded := make(map[catalog.Name]*catalog.Catalog, len(names))
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			logger.ErrorContext(ctx, "failed to load catalog",
				slog.String("source", src.Name()),
				slog.String("catalog", string(names[i])),
				slog.Any("error", r.Err),
			)
			errs = append(errs, fmt.Errorf("catalog %s: %w", names[i], r.Err))
			continue
		}
		logger.InfoContext(ctx, "catalog loaded",
			slog.String("source", src.Name()),
			slog.String("catalog", string(names[i])),
			slog.Int("entries", r.Value.Len()),
		)
		loaded[names[i]] = r.Value
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return loaded, nil
}

// CatalogService implements ports.CatalogService over catalogs that were
// loaded once at startup and are read-only afterwards.
type CatalogService struct {
	catalogs map[catalog.Name]*catalog.Catalog
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewCatalogService creates a CatalogService. A nil logger discards output.
func NewCatalogService(catalogs map[catalog.Name]*catalog.Catalog, metrics *telemetry.Metrics, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CatalogService{
		catalogs: catalogs,
		metrics:  metrics,
		logger:   logger,
		tracer:   otel.Tracer(telemetry.TracerName),
	}
}

// Show resolves key and returns the dialog commands.
func (s *CatalogService) Show(ctx context.Context, name catalog.Name, key string) (ui.Patch, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Show", trace.WithAttributes(
		attribute.String("catalog.name", string(name)),
		attribute.String("catalog.key", key),
	))
	defer span.End()

	c, err := s.catalog(name)
	if err != nil {
		return nil, err
	}

	_, found := c.Lookup(key)
	s.metrics.CatalogLookupTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrCatalog.String(string(name)),
		telemetry.AttrFound.Bool(found),
	))
	if !found {
		s.logger.InfoContext(ctx, "catalog key not found, using placeholder",
			slog.String("catalog", string(name)),
			slog.String("key", key),
		)
	}

	return ui.Patch(c.Display(c.Resolve(key))), nil
}

// Lookup returns the raw entry for key.
func (s *CatalogService) Lookup(_ context.Context, name catalog.Name, key string) (catalog.Entry, error) {
	c, err := s.catalog(name)
	if err != nil {
		return catalog.Entry{}, err
	}
	e, ok := c.Lookup(key)
	if !ok {
		return catalog.Entry{}, fmt.Errorf("%s entry %q: %w", name, key, domain.ErrNotFound)
	}
	return e, nil
}

// Name identifies the catalog set in readiness reports.
func (s *CatalogService) Name() string { return "catalogs" }

// HealthCheck reports an error when a known catalog is missing or empty.
func (s *CatalogService) HealthCheck(_ context.Context) error {
	var errs []error
	for _, n := range catalog.Names() {
		c, ok := s.catalogs[n]
		if !ok || c.Len() == 0 {
			errs = append(errs, fmt.Errorf("catalog %s: %w", n, domain.ErrUnavailable))
		}
	}
	return errors.Join(errs...)
}

func (s *CatalogService) catalog(name catalog.Name) (*catalog.Catalog, error) {
	c, ok := s.catalogs[name]
	if !ok {
		return nil, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
	}
	return c, nil
}
