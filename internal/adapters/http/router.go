// Package http is the browser-facing adapter: the chi route table, the
// embedded browser adapter script, and the listener lifecycle.
package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/campus-web/internal/adapters/http/handlers"
)

//go:embed static
var staticFiles embed.FS

// Handlers groups the inbound handlers the router dispatches to.
type Handlers struct {
	Form        *handlers.FormHandler
	Catalog     *handlers.CatalogHandler
	Interaction *handlers.InteractionHandler
	Health      *handlers.HealthHandler

	// Site, when set, is served at the root for any path no other route
	// claims. It holds the page markup the browser adapter runs against.
	Site fs.FS

	// Throttle, when set, wraps every /api/v1 route.
	Throttle func(http.Handler) http.Handler
}

// NewRouter mounts the probes, the event API under /api/v1, the browser
// adapter under /static/, and optionally the site itself. mw wraps every
// route, outermost first.
func NewRouter(h Handlers, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw...)

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		if h.Throttle != nil {
			r.Use(h.Throttle)
		}

		r.Post("/page/load", h.Interaction.PageLoad)

		r.Route("/forms/{"+handlers.ParamFormID+"}", func(r chi.Router) {
			r.Post("/input", h.Form.Input)
			r.Post("/blur", h.Form.Blur)
			r.Post("/submit", h.Form.Submit)
		})

		// Program and club dialogs.
		r.Get("/catalogs/{"+handlers.ParamCatalog+"}/entries/{"+handlers.ParamKey+"}", h.Catalog.Lookup)
		r.Get("/catalogs/{"+handlers.ParamCatalog+"}/{"+handlers.ParamKey+"}", h.Catalog.Show)

		// Stateless reactors.
		r.Post("/interactions/news-filter", h.Interaction.FilterNews)
		r.Post("/interactions/faq", h.Interaction.ToggleFAQ)
		r.Post("/interactions/keydown", h.Interaction.KeyDown)
	})

	r.Handle("/static/*", http.FileServerFS(staticFiles))

	if h.Site != nil {
		r.Handle("/*", http.FileServerFS(h.Site))
	}

	return r
}
