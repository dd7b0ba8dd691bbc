// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/antispam"
	"github.com/jsamuelsen11/campus-web/internal/domain/form"
	"github.com/jsamuelsen11/campus-web/internal/domain/submission"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
	"github.com/jsamuelsen11/campus-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// Compile-time check that FormService implements ports.FormService.
var _ ports.FormService = (*FormService)(nil)

// Messages shown after a contact submission.
const (
	MsgContactThanks = "Thank you for your message! We'll get back to you within 24 hours."
	labelProcessing  = "Processing..."
)

// Timing holds the fixed delays of the simulated flows.
type Timing struct {
	RegistrationDelay time.Duration
	AlertDismiss      time.Duration
}

// DefaultTiming matches the delays the site has always used.
var DefaultTiming = Timing{
	RegistrationDelay: 2 * time.Second,
	AlertDismiss:      5 * time.Second,
}

// FormService implements ports.FormService. It turns form snapshots into
// command lists using the validator, the progress tracker, the anti-spam
// gate, and the submission state machine.
type FormService struct {
	tokens    ports.AttemptTokens
	fragments ports.Fragments
	gate      antispam.Gate
	timing    Timing
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
	newID     func() string
}

// FormServiceOption customizes a FormService.
type FormServiceOption func(*FormService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) FormServiceOption {
	return func(s *FormService) { s.now = now }
}

// WithIDGenerator replaces the generator of transient element IDs.
func WithIDGenerator(fn func() string) FormServiceOption {
	return func(s *FormService) { s.newID = fn }
}

// NewFormService creates a FormService. A nil logger discards output.
func NewFormService(
	tokens ports.AttemptTokens,
	fragments ports.Fragments,
	gate antispam.Gate,
	timing Timing,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...FormServiceOption,
) *FormService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &FormService{
		tokens:    tokens,
		fragments: fragments,
		gate:      gate,
		timing:    timing,
		metrics:   metrics,
		logger:    logger,
		tracer:    otel.Tracer(telemetry.TracerName),
		now:       time.Now,
		newID:     func() string { return "alert-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init returns the page-load commands of one form.
func (s *FormService) Init(ctx context.Context, f *form.Form) (ui.Patch, error) {
	ctx, span := s.tracer.Start(ctx, "FormService.Init",
		trace.WithAttributes(attribute.String("form.id", f.ID)))
	defer span.End()

	switch f.Role {
	case form.RoleRegistration:
		return ui.Patch(form.ProgressCommands(form.Progress(f))), nil
	case form.RoleContact:
		token, err := s.tokens.Issue(ctx, s.now())
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to issue attempt token",
				slog.String("operation", "Init"),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("issuing attempt token: %w", err)
		}
		return s.antispamInputs(f, token), nil
	default:
		return ui.Patch{}, nil
	}
}

func (s *FormService) antispamInputs(f *form.Form, token string) ui.Patch {
	var p ui.Patch
	if _, ok := f.FieldByName(antispam.HoneypotName); !ok {
		p = p.Append(ui.AppendInput(f.Selector(), map[string]string{
			"type":  "text",
			"name":  antispam.HoneypotName,
			"class": antispam.HoneypotClass,
		}, true))
	}
	if _, ok := f.FieldByName(antispam.TokenName); ok {
		return p.Append(ui.SetValue(tokenSelector(f), token))
	}
	return p.Append(ui.AppendInput(f.Selector(), map[string]string{
		"type":  "hidden",
		"name":  antispam.TokenName,
		"value": token,
	}, false))
}

// Input validates the edited field and refreshes dependent indicators.
func (s *FormService) Input(ctx context.Context, f *form.Form, key string) (ui.Patch, error) {
	_, span := s.tracer.Start(ctx, "FormService.Input")
	defer span.End()

	field, err := lookupField(f, key)
	if err != nil {
		return nil, err
	}

	p := ui.Patch(form.Mark(field, form.Validate(field, f)))

	if field.ID == form.IDPassword {
		if confirm, ok := f.Field(form.IDConfirmPassword); ok && confirm.Value != "" {
			p = p.Append(form.Mark(confirm, form.Validate(confirm, f))...)
		}
	}
	if f.Role == form.RoleRegistration {
		p = p.Append(form.ProgressCommands(form.Progress(f))...)
	}
	if field.ID == form.IDContactMessage {
		p = p.Append(form.CounterCommands(field.Value)...)
	}
	return p, nil
}

// Blur validates the field that lost focus.
func (s *FormService) Blur(ctx context.Context, f *form.Form, key string) (ui.Patch, error) {
	_, span := s.tracer.Start(ctx, "FormService.Blur")
	defer span.End()

	field, err := lookupField(f, key)
	if err != nil {
		return nil, err
	}
	return ui.Patch(form.Mark(field, form.Validate(field, f))), nil
}

// Submit runs the submission flow for the form's role.
func (s *FormService) Submit(ctx context.Context, f *form.Form) (ui.Patch, error) {
	ctx, span := s.tracer.Start(ctx, "FormService.Submit",
		trace.WithAttributes(attribute.String("form.id", f.ID)))
	defer span.End()

	m := submission.NewMachine()
	p, err := s.submit(ctx, f, m)
	if err != nil {
		return nil, err
	}

	outcome := m.Outcome()
	span.SetAttributes(attribute.String("submission.outcome", string(outcome)))
	s.metrics.FormSubmissionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrFormRole.String(string(f.Role)),
		telemetry.AttrResult.String(string(outcome)),
	))
	s.logger.InfoContext(ctx, "form submitted",
		slog.String("form", f.ID),
		slog.String("outcome", string(outcome)),
		slog.Any("path", m.Path()),
	)
	return p, nil
}

func (s *FormService) submit(ctx context.Context, f *form.Form, m *submission.Machine) (ui.Patch, error) {
	if f.Submit.Disabled {
		return ui.Patch{}, nil
	}

	if err := m.To(submission.StateValidating); err != nil {
		return nil, err
	}
	if !form.CheckValidity(f) {
		if err := m.To(submission.StateIdle); err != nil {
			return nil, err
		}
		p := ui.Patch{ui.AddClass(f.Selector(), ui.ClassValidated)}
		for _, o := range form.ValidateAll(f) {
			p = p.Append(form.Mark(o.Field, o.Result)...)
		}
		return p, nil
	}
	if err := m.To(submission.StateSubmitting); err != nil {
		return nil, err
	}

	switch f.Role {
	case form.RoleRegistration:
		return s.submitRegistration(f, m)
	case form.RoleContact:
		return s.submitContact(ctx, f, m)
	default:
		if err := m.To(submission.StateSucceeded); err != nil {
			return nil, err
		}
		return ui.Patch{ui.AddClass(f.Selector(), ui.ClassValidated)}, nil
	}
}

func (s *FormService) submitRegistration(f *form.Form, m *submission.Machine) (ui.Patch, error) {
	button := submitSelector(f)
	spinner, err := s.fragments.Spinner(labelProcessing)
	if err != nil {
		return nil, fmt.Errorf("rendering spinner: %w", err)
	}
	if err := m.To(submission.StateSucceeded); err != nil {
		return nil, err
	}

	// Without a success panel the form stays on screen and only the
	// button is restored.
	var done []ui.Command
	success := ui.ByID(form.IDSuccessMessage)
	if f.SuccessPanel {
		done = append(done, ui.Show(success), ui.Hide(f.Selector()))
	}
	done = append(done,
		ui.SetDisabled(button, false),
		ui.SetText(button, f.Submit.Label),
	)
	if f.SuccessPanel {
		done = append(done, ui.ScrollIntoView(success))
	}

	return ui.Patch{
		ui.SetDisabled(button, true),
		ui.SetHTML(button, spinner),
		ui.Schedule(s.timing.RegistrationDelay, done...),
		ui.AddClass(f.Selector(), ui.ClassValidated),
	}, nil
}

func (s *FormService) submitContact(ctx context.Context, f *form.Form, m *submission.Machine) (ui.Patch, error) {
	honeypot, _ := f.FieldByName(antispam.HoneypotName)
	tokenField, _ := f.FieldByName(antispam.TokenName)

	now := s.now()
	createdAt, err := s.tokens.Redeem(ctx, tokenField.Value)
	tokenOK := err == nil

	var verdict antispam.Verdict
	switch {
	case tokenOK:
		verdict = s.gate.Check(antispam.Attempt{Honeypot: honeypot.Value, CreatedAt: createdAt}, now)
	case errors.Is(err, antispam.ErrTokenInvalid):
		s.logger.WarnContext(ctx, "attempt token rejected", slog.Any("error", err))
		verdict = antispam.Reject(antispam.ReasonAutomated)
		createdAt = now
	default:
		s.logger.ErrorContext(ctx, "failed to redeem attempt token",
			slog.String("operation", "Submit"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("redeeming attempt token: %w", err)
	}

	if !verdict.Accepted {
		return s.rejectContact(ctx, f, m, verdict, createdAt)
	}

	if err := m.To(submission.StateSucceeded); err != nil {
		return nil, err
	}
	fresh, err := s.tokens.Issue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("issuing attempt token: %w", err)
	}
	p, err := s.transientAlert(ui.AlertSuccess, MsgContactThanks)
	if err != nil {
		return nil, err
	}
	return p.Append(
		ui.ResetForm(f.Selector()),
		ui.RemoveClass(f.Selector(), ui.ClassValidated),
		ui.Show(ui.ByID(form.IDContactSuccess)),
		ui.SetValue(tokenSelector(f), fresh),
	), nil
}

func (s *FormService) rejectContact(
	ctx context.Context,
	f *form.Form,
	m *submission.Machine,
	verdict antispam.Verdict,
	createdAt time.Time,
) (ui.Patch, error) {
	if err := m.To(submission.StateRejectedBySpamGate); err != nil {
		return nil, err
	}
	if err := m.To(submission.StateIdle); err != nil {
		return nil, err
	}

	s.metrics.AntispamRejectionTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrReason.String(string(verdict.Reason))))
	s.logger.InfoContext(ctx, "contact submission rejected",
		slog.String("reason", string(verdict.Reason)))

	// The form is retained, so it needs a token that still remembers when
	// the visitor started filling it in.
	retry, err := s.tokens.Issue(ctx, createdAt)
	if err != nil {
		return nil, fmt.Errorf("issuing attempt token: %w", err)
	}
	p, err := s.transientAlert(ui.AlertError, verdict.Reason.Message())
	if err != nil {
		return nil, err
	}
	return p.Append(
		ui.SetValue(tokenSelector(f), retry),
		ui.AddClass(f.Selector(), ui.ClassValidated),
	), nil
}

// transientAlert inserts a message before the first form on the page and
// removes it again after the dismiss delay.
func (s *FormService) transientAlert(kind ui.AlertKind, message string) (ui.Patch, error) {
	id := s.newID()
	html, err := s.fragments.Alert(id, kind, message)
	if err != nil {
		return nil, fmt.Errorf("rendering alert: %w", err)
	}
	return ui.Patch{
		ui.InsertAlert("form", id, html),
		ui.Schedule(s.timing.AlertDismiss, ui.Remove(ui.ByID(id))),
	}, nil
}

func lookupField(f *form.Form, key string) (form.Field, error) {
	if field, ok := f.Field(key); ok {
		return field, nil
	}
	if field, ok := f.FieldByName(key); ok {
		return field, nil
	}
	return form.Field{}, fmt.Errorf("field %q in form %q: %w", key, f.ID, domain.ErrNotFound)
}

func submitSelector(f *form.Form) string {
	if f.Submit.Target != "" {
		return f.Submit.Target
	}
	return f.Selector() + ` button[type="submit"]`
}

func tokenSelector(f *form.Form) string {
	return fmt.Sprintf("%s [name=%q]", f.Selector(), antispam.TokenName)
}
