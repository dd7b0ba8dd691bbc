package ports

import "github.com/jsamuelsen11/campus-web/internal/domain/ui"

// Fragments renders the small HTML fragments that commands carry.
// Implemented by the HTTP views adapter; called by the application layer.
type Fragments interface {
	// Alert renders a dismissible message with the given element ID.
	Alert(id string, kind ui.AlertKind, message string) (string, error)

	// Spinner renders the loading label shown on a busy submit button.
	Spinner(label string) (string, error)
}
