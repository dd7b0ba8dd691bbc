// Package form holds the field validator and progress tracker. Both work on an
// immutable Form snapshot posted by the browser adapter and never touch the
// page themselves.
package form

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

// Element IDs the page markup is expected to carry.
const (
	IDRegistration    = "registrationForm"
	IDContact         = "contactForm"
	IDPassword        = "password"
	IDConfirmPassword = "confirmPassword"
	IDProgress        = "formProgress"
	IDSuccessMessage  = "successMessage"
	IDContactSuccess  = "contactSuccess"
	IDContactMessage  = "contactMessage"
	IDCharCount       = "charCount"
)

// Kind is the input type of a field.
type Kind string

const (
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindPassword Kind = "password"
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindHidden   Kind = "hidden"
)

// IsValid reports whether k is a known field kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindEmail, KindTel, KindPassword, KindText, KindTextarea,
		KindSelect, KindCheckbox, KindRadio, KindHidden:
		return true
	}
	return false
}

// Role identifies which submission flow a form follows.
type Role string

const (
	RoleRegistration Role = "registration"
	RoleContact      Role = "contact"
	RoleOther        Role = "other"
)

// RoleFor maps a form element ID to its role.
func RoleFor(formID string) Role {
	switch formID {
	case IDRegistration:
		return RoleRegistration
	case IDContact:
		return RoleContact
	default:
		return RoleOther
	}
}

// Field is one input as seen at the time of the event.
type Field struct {
	ID        string
	Name      string
	Kind      Kind
	Value     string
	Checked   bool
	Required  bool
	MinLength int
	MaxLength int
	Pattern   string
}

// Selector addresses the field on the page, preferring its ID.
func (f Field) Selector() string {
	if f.ID != "" {
		return ui.ByID(f.ID)
	}
	return fmt.Sprintf("[name=%q]", f.Name)
}

// Submit is the state of the form's submit control.
type Submit struct {
	Target   string
	Label    string
	Disabled bool
}

// Form is a snapshot of a form and its fields.
type Form struct {
	ID        string
	Role      Role
	Fields    []Field
	Validated bool
	Submit    Submit

	// SuccessPanel reports whether the page carries the registration
	// success panel.
	SuccessPanel bool
}

// Selector addresses the form element.
func (f *Form) Selector() string {
	return ui.ByID(f.ID)
}

// Field returns the field with the given ID.
func (f *Form) Field(id string) (Field, bool) {
	for i := range f.Fields {
		if f.Fields[i].ID == id {
			return f.Fields[i], true
		}
	}
	return Field{}, false
}

// FieldByName returns the first field with the given name attribute.
func (f *Form) FieldByName(name string) (Field, bool) {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return f.Fields[i], true
		}
	}
	return Field{}, false
}

// Validate checks that the snapshot is well formed. It says nothing about
// whether the user's input is acceptable; that is the job of the validator.
func (f *Form) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(f.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	for i := range f.Fields {
		fld := &f.Fields[i]
		key := fmt.Sprintf("fields[%d]", i)
		if fld.ID == "" && fld.Name == "" {
			fields[key] = "needs an id or a name"
			continue
		}
		if !fld.Kind.IsValid() {
			fields[key+".kind"] = fmt.Sprintf("invalid: %q", fld.Kind)
		}
		if fld.MinLength < 0 || fld.MaxLength < 0 {
			fields[key+".length"] = "must not be negative"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
