package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/campus-web/internal/domain/page"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// Compile-time check that InteractionService implements ports.InteractionService.
var _ ports.InteractionService = (*InteractionService)(nil)

// InteractionService implements ports.InteractionService. Page load delegates
// per-form setup to the form service; the other reactors are pure.
type InteractionService struct {
	forms  ports.FormService
	logger *slog.Logger
	tracer trace.Tracer
}

// NewInteractionService creates an InteractionService. A nil logger discards output.
func NewInteractionService(forms ports.FormService, logger *slog.Logger) *InteractionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InteractionService{
		forms:  forms,
		logger: logger,
		tracer: otel.Tracer(telemetry.TracerName),
	}
}

// PageLoad initializes every form on the page and activates tooltips.
func (s *InteractionService) PageLoad(ctx context.Context, load page.Load) (ui.Patch, error) {
	ctx, span := s.tracer.Start(ctx, "InteractionService.PageLoad")
	defer span.End()

	var p ui.Patch
	for i := range load.Forms {
		f := &load.Forms[i]
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("forms[%d]: %w", i, err)
		}
		cmds, err := s.forms.Init(ctx, f)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to initialize form",
				slog.String("operation", "PageLoad"),
				slog.String("form", f.ID),
				slog.Any("error", err),
			)
			return nil, err
		}
		p = p.Append(cmds...)
	}
	p = p.Append(page.ActivateTooltips(load.Tooltips)...)

	s.logger.DebugContext(ctx, "page initialized",
		slog.Int("forms", len(load.Forms)),
		slog.Int("commands", len(p)),
	)
	return p, nil
}

// FilterNews applies a news filter click.
func (s *InteractionService) FilterNews(ctx context.Context, ev page.NewsFilter) (ui.Patch, error) {
	ctx, span := s.tracer.Start(ctx, "InteractionService.FilterNews")
	defer span.End()

	s.logger.DebugContext(ctx, "filtering news",
		slog.String("filter", ev.Filter),
		slog.Int("cards", len(ev.Cards)),
	)
	return ui.Patch(page.FilterNews(ev)), nil
}

// ToggleFAQ applies an FAQ question click.
func (s *InteractionService) ToggleFAQ(ctx context.Context, ev page.FAQClick) (ui.Patch, error) {
	_, span := s.tracer.Start(ctx, "InteractionService.ToggleFAQ")
	defer span.End()

	return ui.Patch(page.ToggleFAQ(ev)), nil
}

// KeyDown applies a key press.
func (s *InteractionService) KeyDown(ctx context.Context, ev page.KeyDown) (ui.Patch, error) {
	_, span := s.tracer.Start(ctx, "InteractionService.KeyDown")
	defer span.End()

	return ui.Patch(page.HandleKey(ev)), nil
}
