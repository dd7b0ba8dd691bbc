package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/campus-web/internal/adapters/attempt"
	"github.com/jsamuelsen11/campus-web/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/campus-web/internal/adapters/content"
	adapthttp "github.com/jsamuelsen11/campus-web/internal/adapters/http"
	"github.com/jsamuelsen11/campus-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/campus-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/campus-web/internal/adapters/http/views"
	"github.com/jsamuelsen11/campus-web/internal/app"
	"github.com/jsamuelsen11/campus-web/internal/domain/antispam"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/platform/config"
	"github.com/jsamuelsen11/campus-web/internal/platform/health"
	"github.com/jsamuelsen11/campus-web/internal/platform/httpclient"
	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// provide registers every lazily built service. Nothing is constructed until
// the server is invoked.
func provide(i *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	metrics := func(i do.Injector) *telemetry.Metrics { return do.MustInvoke[*telemetry.Metrics](i) }

	// outbound
	do.Provide(i, func(i do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, contentServiceName, metrics(i), logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.CatalogSource, error) {
		switch cfg.Catalog.Source {
		case config.CatalogSourceDir:
			return content.Dir(cfg.Catalog.Dir), nil
		case config.CatalogSourceRemote:
			return acl.NewContentClient(do.MustInvoke[*httpclient.Client](i), logger), nil
		default:
			return content.Embedded(), nil
		}
	})
	do.Provide(i, func(do.Injector) (ports.AttemptTokens, error) {
		if cfg.Antispam.Secret == "" {
			logger.Warn("antispam.secret is empty, attempt tokens are signed with a per-process key")
		}
		return attempt.New(attempt.Config{
			Issuer: cfg.Antispam.Issuer,
			Secret: []byte(cfg.Antispam.Secret),
			TTL:    cfg.Antispam.TokenTTL,
		})
	})
	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(checkTimeout), nil
	})

	// services
	do.Provide(i, func(i do.Injector) (*app.CatalogService, error) {
		src := do.MustInvoke[ports.CatalogSource](i)
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()
		loaded, err := app.LoadCatalogs(ctx, src, catalog.Names(), logger)
		if err != nil {
			return nil, fmt.Errorf("loading catalogs from %s: %w", src.Name(), err)
		}
		return app.NewCatalogService(loaded, metrics(i), logger), nil
	})
	do.Provide(i, func(i do.Injector) (*app.FormService, error) {
		gate := antispam.NewGate(cfg.Antispam.MinInterval)
		timing := app.Timing{
			RegistrationDelay: cfg.Timing.RegistrationDelay,
			AlertDismiss:      cfg.Timing.AlertDismiss,
		}
		return app.NewFormService(do.MustInvoke[ports.AttemptTokens](i), views.Fragments{},
			gate, timing, metrics(i), logger), nil
	})
	do.Provide(i, func(i do.Injector) (*app.InteractionService, error) {
		return app.NewInteractionService(do.MustInvoke[*app.FormService](i), logger), nil
	})

	// inbound
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		site, err := siteFS(cfg.Site.Dir)
		if err != nil {
			return nil, err
		}
		h := adapthttp.Handlers{
			Form:        handlers.NewFormHandler(do.MustInvoke[*app.FormService](i)),
			Catalog:     handlers.NewCatalogHandler(do.MustInvoke[*app.CatalogService](i)),
			Interaction: handlers.NewInteractionHandler(do.MustInvoke[*app.InteractionService](i)),
			Health:      handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Site:        site,
			Throttle:    middleware.RateLimit(cfg.Server.RateLimit.RequestsPerSecond, cfg.Server.RateLimit.BurstSize),
		}
		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics(i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

// registerChecks adds the readiness checks. The content client only matters
// when catalogs are fetched remotely.
func registerChecks(i do.Injector, cfg *config.Config) {
	registry := do.MustInvoke[ports.HealthRegistry](i)
	registry.Register(do.MustInvoke[*app.CatalogService](i))
	if cfg.Catalog.Source == config.CatalogSourceRemote {
		registry.Register(do.MustInvoke[*httpclient.Client](i))
	}
}

// siteFS opens the site directory. An empty dir serves no site.
func siteFS(dir string) (fs.FS, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("site.dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site.dir %q is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
