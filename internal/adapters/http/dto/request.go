package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/form"
	"github.com/jsamuelsen11/campus-web/internal/domain/page"
)

// FieldSnapshot is one input of a form as the browser adapter read it.
type FieldSnapshot struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Checked   bool   `json:"checked,omitempty"`
	Required  bool   `json:"required,omitempty"`
	MinLength int    `json:"min_length,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// SubmitSnapshot is the state of a form's submit button.
type SubmitSnapshot struct {
	Target   string `json:"target,omitempty"`
	Label    string `json:"label,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// FormSnapshot represents a form and its fields at the time of an event.
type FormSnapshot struct {
	ID           string          `json:"id"`
	Validated    bool            `json:"validated,omitempty"`
	SuccessPanel bool            `json:"success_panel,omitempty"`
	Fields       []FieldSnapshot `json:"fields"`
	Submit       SubmitSnapshot  `json:"submit"`
}

// ToDomain converts the snapshot to a domain Form. A non-empty formID, taken
// from the URL, wins over the ID in the body. The role is derived from the ID.
func (s *FormSnapshot) ToDomain(formID string) *form.Form {
	id := s.ID
	if formID != "" {
		id = formID
	}
	f := &form.Form{
		ID:           id,
		Role:         form.RoleFor(id),
		Validated:    s.Validated,
		SuccessPanel: s.SuccessPanel,
		Fields:       make([]form.Field, len(s.Fields)),
		Submit: form.Submit{
			Target:   s.Submit.Target,
			Label:    s.Submit.Label,
			Disabled: s.Submit.Disabled,
		},
	}
	for i, fs := range s.Fields {
		f.Fields[i] = form.Field{
			ID:        fs.ID,
			Name:      fs.Name,
			Kind:      form.Kind(strings.ToLower(fs.Type)),
			Value:     fs.Value,
			Checked:   fs.Checked,
			Required:  fs.Required,
			MinLength: fs.MinLength,
			MaxLength: fs.MaxLength,
			Pattern:   fs.Pattern,
		}
	}
	return f
}

// FieldEventRequest represents the JSON body of an input or blur event.
type FieldEventRequest struct {
	Form  FormSnapshot `json:"form"`
	Field string       `json:"field"`
}

// Validate checks that the event names a field.
// Returns a *domain.ValidationError if any checks fail.
func (r *FieldEventRequest) Validate() error {
	if strings.TrimSpace(r.Field) == "" {
		return &domain.ValidationError{Fields: map[string]string{"field": domain.MsgRequired}}
	}
	return nil
}

// SubmitRequest represents the JSON body of a submit event.
type SubmitRequest struct {
	Form FormSnapshot `json:"form"`
}

// Validate is a no-op; the form snapshot is checked after conversion.
func (r *SubmitRequest) Validate() error {
	return nil
}

// PageLoadRequest represents the JSON body sent once the document is ready.
type PageLoadRequest struct {
	Forms    []FormSnapshot `json:"forms"`
	Tooltips int            `json:"tooltips"`
}

// Validate checks the counts the page reported.
// Returns a *domain.ValidationError if any checks fail.
func (r *PageLoadRequest) Validate() error {
	if r.Tooltips < 0 {
		return &domain.ValidationError{Fields: map[string]string{
			"tooltips": fmt.Sprintf("must not be negative, got %d", r.Tooltips),
		}}
	}
	return nil
}

// ToDomain converts the request to a page.Load.
func (r *PageLoadRequest) ToDomain() page.Load {
	load := page.Load{
		Forms:    make([]form.Form, len(r.Forms)),
		Tooltips: r.Tooltips,
	}
	for i := range r.Forms {
		load.Forms[i] = *r.Forms[i].ToDomain("")
	}
	return load
}

// NewsCardSnapshot is one news card. Badge is nil when the card has no badge.
type NewsCardSnapshot struct {
	Ref   string  `json:"ref"`
	Badge *string `json:"badge,omitempty"`
}

// NewsFilterRequest represents a click on a news filter button.
type NewsFilterRequest struct {
	Button string             `json:"button"`
	Filter string             `json:"filter"`
	Cards  []NewsCardSnapshot `json:"cards"`
}

// Validate checks that the button and every card can be addressed.
// Returns a *domain.ValidationError if any checks fail.
func (r *NewsFilterRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Button) == "" {
		fields["button"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Filter) == "" {
		fields["filter"] = domain.MsgRequired
	}
	for i, c := range r.Cards {
		if strings.TrimSpace(c.Ref) == "" {
			fields[fmt.Sprintf("cards[%d].ref", i)] = domain.MsgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a page.NewsFilter.
func (r *NewsFilterRequest) ToDomain() page.NewsFilter {
	ev := page.NewsFilter{
		ButtonRef: r.Button,
		Filter:    r.Filter,
		Cards:     make([]page.NewsCard, len(r.Cards)),
	}
	for i, c := range r.Cards {
		ev.Cards[i] = page.NewsCard{Ref: c.Ref}
		if c.Badge != nil {
			ev.Cards[i].Badge = *c.Badge
			ev.Cards[i].HasBadge = true
		}
	}
	return ev
}

// FAQRequest represents a click on an FAQ question.
type FAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Open     bool   `json:"open"`
}

// Validate checks that the question and its answer can be addressed.
// Returns a *domain.ValidationError if any checks fail.
func (r *FAQRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Question) == "" {
		fields["question"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Answer) == "" {
		fields["answer"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a page.FAQClick.
func (r *FAQRequest) ToDomain() page.FAQClick {
	return page.FAQClick{Item: page.FAQItem{
		QuestionRef: r.Question,
		AnswerRef:   r.Answer,
		Open:        r.Open,
	}}
}

// KeyDownRequest represents a key press.
type KeyDownRequest struct {
	Key       string `json:"key"`
	ModalOpen bool   `json:"modal_open"`
}

// Validate checks that a key was reported.
// Returns a *domain.ValidationError if any checks fail.
func (r *KeyDownRequest) Validate() error {
	if r.Key == "" {
		return &domain.ValidationError{Fields: map[string]string{"key": domain.MsgRequired}}
	}
	return nil
}

// ToDomain converts the request to a page.KeyDown.
func (r *KeyDownRequest) ToDomain() page.KeyDown {
	return page.KeyDown{Key: r.Key, ModalOpen: r.ModalOpen}
}
