package ports

import (
	"context"

	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/domain/form"
	"github.com/jsamuelsen11/campus-web/internal/domain/page"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

// FormService defines the service port for form events.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method takes the form as the browser saw it and returns the commands
// the browser must apply. User-correctable failures (invalid fields, spam gate
// rejections) are ordinary command lists, not errors.
type FormService interface {
	// Init returns the commands run once when the page loads: the progress
	// indicator for the registration form and the anti-spam inputs for the
	// contact form.
	Init(ctx context.Context, f *form.Form) (ui.Patch, error)

	// Input handles an input event on the field with the given ID or name.
	// Returns domain.ErrNotFound if the form has no such field.
	Input(ctx context.Context, f *form.Form, field string) (ui.Patch, error)

	// Blur handles a focus-loss event on the field.
	// Returns domain.ErrNotFound if the form has no such field.
	Blur(ctx context.Context, f *form.Form, field string) (ui.Patch, error)

	// Submit runs the submission flow for the form's role.
	// Returns an empty patch while a submission is already in flight.
	Submit(ctx context.Context, f *form.Form) (ui.Patch, error)
}

// CatalogService defines the service port for the program and club dialogs.
type CatalogService interface {
	// Show returns the commands that populate and open the catalog's dialog.
	// An unknown key resolves to the catalog's placeholder.
	// Returns domain.ErrNotFound if the catalog itself does not exist.
	Show(ctx context.Context, name catalog.Name, key string) (ui.Patch, error)

	// Lookup returns the entry for key without rendering commands.
	// Returns domain.ErrNotFound if the catalog or the key does not exist.
	Lookup(ctx context.Context, name catalog.Name, key string) (catalog.Entry, error)
}

// InteractionService defines the service port for the stateless page reactors.
type InteractionService interface {
	// PageLoad returns the initialization commands for the whole page.
	PageLoad(ctx context.Context, load page.Load) (ui.Patch, error)

	// FilterNews handles a click on a news filter button.
	FilterNews(ctx context.Context, ev page.NewsFilter) (ui.Patch, error)

	// ToggleFAQ handles a click on an FAQ question.
	ToggleFAQ(ctx context.Context, ev page.FAQClick) (ui.Patch, error)

	// KeyDown handles a key press.
	KeyDown(ctx context.Context, ev page.KeyDown) (ui.Patch, error)
}
