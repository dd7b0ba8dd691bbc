package form

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

// Custom validity messages shown by the browser next to a rejected field.
const (
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgInvalidPhone     = "Please enter a valid phone number"
	MsgWeakPassword     = "Password must be at least 8 characters with uppercase, lowercase, and numbers"
	MsgPasswordMismatch = "Passwords must match"
)

const (
	minPhoneDigits    = 10
	minPasswordLength = 8
)

var (
	// Whitespace is rejected separately so Unicode spaces count too.
	emailPattern = regexp.MustCompile(`^.+@.+\..+$`)
	// Built-in type=email shape. Unlike the custom rule it rejects a second "@".
	nativeEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
)

// State is the visual validity of a field.
type State string

const (
	StateUntouched State = "untouched"
	StateValid     State = "valid"
	StateInvalid   State = "invalid"
)

// Result is the outcome of validating one field. Message is the custom
// validity message; it is empty when the custom rule passed, even if a native
// constraint failed.
type Result struct {
	Valid   bool
	Message string
}

// State maps the result to the marker shown on the field.
func (r Result) State() State {
	if r.Valid {
		return StateValid
	}
	return StateInvalid
}

// Outcome pairs a field with its validation result.
type Outcome struct {
	Field  Field
	Result Result
}

// Validate evaluates native constraints first and then the custom rule for
// the field's kind. The field is valid only when both pass.
func Validate(field Field, f *Form) Result {
	native := checkNative(field, f)
	message := customMessage(field, f)
	return Result{Valid: native && message == "", Message: message}
}

// ValidateAll validates every visible field in document order.
func ValidateAll(f *Form) []Outcome {
	out := make([]Outcome, 0, len(f.Fields))
	for i := range f.Fields {
		if f.Fields[i].Kind == KindHidden {
			continue
		}
		out = append(out, Outcome{Field: f.Fields[i], Result: Validate(f.Fields[i], f)})
	}
	return out
}

// CheckValidity reports whether every field passes, as the browser's
// form-level constraint check would.
func CheckValidity(f *Form) bool {
	for _, o := range ValidateAll(f) {
		if !o.Result.Valid {
			return false
		}
	}
	return true
}

// Mark returns the commands that publish a result on the page: the custom
// validity message followed by the valid/invalid class swap.
func Mark(field Field, r Result) []ui.Command {
	target := field.Selector()
	class := ui.ClassInvalid
	if r.Valid {
		class = ui.ClassValid
	}
	return []ui.Command{
		ui.SetCustomValidity(target, r.Message),
		ui.RemoveClass(target, ui.ClassValid, ui.ClassInvalid),
		ui.AddClass(target, class),
	}
}

func customMessage(field Field, f *Form) string {
	switch {
	case field.ID == IDConfirmPassword:
		primary, _ := f.Field(IDPassword)
		if field.Value != "" && field.Value != primary.Value {
			return MsgPasswordMismatch
		}
	case field.Kind == KindEmail:
		if field.Value != "" && !ValidEmail(field.Value) {
			return MsgInvalidEmail
		}
	case field.Kind == KindTel:
		if field.Value != "" && !ValidPhone(field.Value) {
			return MsgInvalidPhone
		}
	case field.Kind == KindPassword && field.ID == IDPassword:
		if field.Value != "" && !StrongPassword(field.Value) {
			return MsgWeakPassword
		}
	}
	return ""
}

func checkNative(field Field, f *Form) bool {
	if field.ID == IDConfirmPassword && field.Value != "" {
		primary, _ := f.Field(IDPassword)
		if field.Value != primary.Value {
			return false
		}
	}

	if field.Required && !present(field, f) {
		return false
	}
	if field.Value == "" {
		return true
	}

	n := utf8.RuneCountInString(field.Value)
	if field.MinLength > 0 && n < field.MinLength {
		return false
	}
	if field.MaxLength > 0 && n > field.MaxLength {
		return false
	}
	if field.Kind == KindEmail && !nativeEmailPattern.MatchString(field.Value) {
		return false
	}
	if field.Pattern != "" {
		re, err := regexp.Compile("^(?:" + field.Pattern + ")$")
		if err != nil {
			return false
		}
		if !re.MatchString(field.Value) {
			return false
		}
	}
	return true
}

// ValidEmail reports whether s has the shape local@domain.tld with no
// whitespace anywhere. Extra "@" signs are allowed.
func ValidEmail(s string) bool {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s carries at least ten digits once every
// non-digit is stripped.
func ValidPhone(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits
}

// StrongPassword reports whether s is at least eight characters long and
// mixes upper case, lower case, and digits.
func StrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}

// present is the native required check: any non-empty value satisfies it.
func present(field Field, f *Form) bool {
	switch field.Kind {
	case KindCheckbox:
		return field.Checked
	case KindRadio:
		return groupChecked(field.Name, f)
	default:
		return field.Value != ""
	}
}

// filled is the progress notion of a completed field; whitespace does not count.
func filled(field Field, f *Form) bool {
	switch field.Kind {
	case KindCheckbox:
		return field.Checked
	case KindRadio:
		return groupChecked(field.Name, f)
	default:
		return strings.TrimSpace(field.Value) != ""
	}
}

func groupChecked(name string, f *Form) bool {
	for i := range f.Fields {
		if f.Fields[i].Kind == KindRadio && f.Fields[i].Name == name && f.Fields[i].Checked {
			return true
		}
	}
	return false
}
