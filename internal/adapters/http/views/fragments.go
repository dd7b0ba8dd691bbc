// Package views renders the HTML fragments carried by UI commands.
package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// Compile-time interface check.
var _ ports.Fragments = Fragments{}

// Fragments implements ports.Fragments with templ components.
type Fragments struct{}

// Alert renders a dismissible Bootstrap alert.
func (Fragments) Alert(id string, kind ui.AlertKind, message string) (string, error) {
	return renderString(AlertBox(id, kind, message))
}

// Spinner renders a small spinner followed by label.
func (Fragments) Spinner(label string) (string, error) {
	return renderString(SpinnerLabel(label))
}

// AlertBox is the alert component. Unknown kinds render as errors.
func AlertBox(id string, kind ui.AlertKind, message string) templ.Component {
	class := "alert-danger"
	if kind == ui.AlertSuccess {
		class = "alert-success"
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div id="%s" class="alert %s alert-dismissible fade show" role="alert">%s`+
				`<button type="button" class="btn-close" data-bs-dismiss="alert" aria-label="Close"></button></div>`,
			templ.EscapeString(id), class, templ.EscapeString(message))
		return err
	})
}

// SpinnerLabel is the busy submit button content.
func SpinnerLabel(label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<span class="spinner-border spinner-border-sm" role="status"></span> `+templ.EscapeString(label))
		return err
	})
}

func renderString(c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		return "", fmt.Errorf("rendering fragment: %w", err)
	}
	return buf.String(), nil
}
