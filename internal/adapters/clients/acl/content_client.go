package acl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/campus-web/internal/adapters/content"
	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/platform/httpclient"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CatalogSource = (*ContentClient)(nil)
	_ ports.HealthChecker = (*ContentClient)(nil)
)

// yamlMediaType is sent as Accept on catalog fetches.
const yamlMediaType = "application/yaml"

// ContentClient loads catalogs from GET {base}/catalogs/{name}.yaml. The
// documents use the same format as the embedded catalogs and are decoded by
// the content package.
type ContentClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewContentClient creates a ContentClient over the given HTTP client.
func NewContentClient(client *httpclient.Client, logger *slog.Logger) *ContentClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Name returns the service name the HTTP client was built with. It labels
// both the catalog source and the health check.
func (c *ContentClient) Name() string {
	return c.client.Name()
}

// Load fetches and decodes one catalog.
func (c *ContentClient) Load(ctx context.Context, name catalog.Name) (*catalog.Catalog, error) {
	if !name.IsValid() {
		return nil, fmt.Errorf("catalog %q: %w", name, domain.ErrNotFound)
	}

	body, err := c.req.Get(ctx, "/catalogs/"+string(name)+".yaml", yamlMediaType)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog %s: %w", name, err)
	}

	cat, err := content.DecodeBytes(ctx, name, body)
	if err != nil {
		c.logger.ErrorContext(ctx, "remote catalog rejected",
			slog.String("catalog", string(name)),
			slog.Any("error", err),
		)
		return nil, err
	}
	return cat, nil
}

// HealthCheck reports the content service's state from the circuit breaker
// without making a request.
func (c *ContentClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
