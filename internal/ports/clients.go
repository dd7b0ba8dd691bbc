package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
)

// CatalogSource defines the client port for catalog content.
// Implemented by the content adapter; called by the application layer at
// startup. Implementations read from embedded data, a directory, or a remote
// content service.
type CatalogSource interface {
	// Name returns a short identifier for logs and health checks.
	Name() string

	// Load reads and renders one catalog.
	// Returns domain.ErrNotFound if the source has no data for the catalog.
	// Returns domain.ErrUnavailable if a remote source cannot be reached.
	Load(ctx context.Context, name catalog.Name) (*catalog.Catalog, error)
}

// AttemptTokens issues and redeems the signed tokens that carry a contact
// form's creation time between page load and submit.
type AttemptTokens interface {
	// Issue returns a token recording createdAt.
	Issue(ctx context.Context, createdAt time.Time) (string, error)

	// Redeem verifies the token, marks it used, and returns its creation time.
	// Returns antispam.ErrTokenInvalid if the token is missing, forged,
	// expired, or already redeemed.
	Redeem(ctx context.Context, token string) (time.Time, error)
}
