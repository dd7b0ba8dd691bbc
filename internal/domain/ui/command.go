// Package ui models page mutations as data. Handlers never touch the page
// directly: they return an ordered list of Commands that the browser adapter
// applies in sequence. Timers are expressed as a Schedule command that carries
// its own nested command list, so a delayed continuation runs to completion
// on the client exactly like the rest of the list.
package ui

import (
	"strings"
	"time"
)

// Op names a single page mutation understood by the browser adapter.
type Op string

const (
	OpAddClass          Op = "add_class"
	OpRemoveClass       Op = "remove_class"
	OpSetStyle          Op = "set_style"
	OpSetAttr           Op = "set_attr"
	OpSetText           Op = "set_text"
	OpSetHTML           Op = "set_html"
	OpSetCustomValidity Op = "set_custom_validity"
	OpSetDisabled       Op = "set_disabled"
	OpSetValue          Op = "set_value"
	OpAppendInput       Op = "append_input"
	OpInsertAlert       Op = "insert_alert"
	OpRemove            Op = "remove"
	OpResetForm         Op = "reset_form"
	OpScrollIntoView    Op = "scroll_into_view"
	OpShowDialog        Op = "show_dialog"
	OpHideDialog        Op = "hide_dialog"
	OpActivateTooltip   Op = "activate_tooltip"
	OpSchedule          Op = "schedule"
)

// Command is one mutation. Target is a CSS selector; Name carries the class,
// attribute, style property, or input name depending on Op.
type Command struct {
	Op     Op
	Target string
	Name   string
	Value  string
	HTML   string
	Attrs  map[string]string
	Delay  time.Duration
	Then   []Command
}

// Patch is an ordered list of commands produced for one event.
type Patch []Command

// Append adds commands to the patch and returns it for chaining.
func (p Patch) Append(cmds ...Command) Patch {
	return append(p, cmds...)
}

// Empty reports whether the patch carries no commands.
func (p Patch) Empty() bool {
	return len(p) == 0
}

// ByID turns an element ID into a selector.
func ByID(id string) string {
	return "#" + id
}

// ByRef addresses an element the browser adapter tagged with data-ref while
// building a snapshot.
func ByRef(ref string) string {
	return `[data-ref="` + ref + `"]`
}

// AddClass adds a class to every element matching target.
func AddClass(target, class string) Command {
	return Command{Op: OpAddClass, Target: target, Name: class}
}

// RemoveClass removes one or more classes; the adapter splits Name on spaces.
func RemoveClass(target string, classes ...string) Command {
	return Command{Op: OpRemoveClass, Target: target, Name: strings.Join(classes, " ")}
}

// SetStyle sets an inline style property.
func SetStyle(target, property, value string) Command {
	return Command{Op: OpSetStyle, Target: target, Name: property, Value: value}
}

// SetAttr sets an attribute on every matching element.
func SetAttr(target, attr, value string) Command {
	return Command{Op: OpSetAttr, Target: target, Name: attr, Value: value}
}

// SetText replaces the text content of the target.
func SetText(target, text string) Command {
	return Command{Op: OpSetText, Target: target, Value: text}
}

// SetHTML replaces the inner markup of the target.
func SetHTML(target, html string) Command {
	return Command{Op: OpSetHTML, Target: target, HTML: html}
}

// SetCustomValidity sets the native constraint-validation message; an empty
// message marks the field as valid for the browser.
func SetCustomValidity(target, message string) Command {
	return Command{Op: OpSetCustomValidity, Target: target, Value: message}
}

// SetDisabled toggles the disabled property of a control.
func SetDisabled(target string, disabled bool) Command {
	v := "false"
	if disabled {
		v = "true"
	}
	return Command{Op: OpSetDisabled, Target: target, Value: v}
}

// SetValue sets the value of an input.
func SetValue(target, value string) Command {
	return Command{Op: OpSetValue, Target: target, Value: value}
}

// AppendInput appends an input element to the target form. Attrs become the
// element's attributes; a hidden input also gets an inline display:none.
func AppendInput(formTarget string, attrs map[string]string, hidden bool) Command {
	cmd := Command{Op: OpAppendInput, Target: formTarget, Attrs: attrs}
	if hidden {
		cmd.Value = "hidden"
	}
	return cmd
}

// InsertAlert inserts rendered alert markup before the target element. The
// alert's element ID is carried in Name so a later Remove can address it.
func InsertAlert(beforeTarget, alertID, html string) Command {
	return Command{Op: OpInsertAlert, Target: beforeTarget, Name: alertID, HTML: html}
}

// Remove detaches matching elements from the page.
func Remove(target string) Command {
	return Command{Op: OpRemove, Target: target}
}

// ResetForm restores a form's fields to their initial values.
func ResetForm(target string) Command {
	return Command{Op: OpResetForm, Target: target}
}

// ScrollIntoView smoothly scrolls the target into the viewport.
func ScrollIntoView(target string) Command {
	return Command{Op: OpScrollIntoView, Target: target, Value: "smooth"}
}

// ShowDialog opens a Bootstrap modal.
func ShowDialog(target string) Command {
	return Command{Op: OpShowDialog, Target: target}
}

// HideDialog closes a Bootstrap modal.
func HideDialog(target string) Command {
	return Command{Op: OpHideDialog, Target: target}
}

// ActivateTooltip initializes a Bootstrap tooltip on the target.
func ActivateTooltip(target string) Command {
	return Command{Op: OpActivateTooltip, Target: target}
}

// Schedule defers cmds by delay. The nested list runs atomically when the
// timer fires and is not cancellable.
func Schedule(delay time.Duration, cmds ...Command) Command {
	return Command{Op: OpSchedule, Delay: delay, Then: cmds}
}

// Show removes the Bootstrap "d-none" utility class from the target.
func Show(target string) Command {
	return RemoveClass(target, ClassHidden)
}

// Hide adds the "d-none" class to the target.
func Hide(target string) Command {
	return AddClass(target, ClassHidden)
}

// Classes and styles shared by the page markup.
const (
	ClassHidden    = "d-none"
	ClassValid     = "is-valid"
	ClassInvalid   = "is-invalid"
	ClassValidated = "was-validated"
	ClassActive    = "active"
)

// AlertKind selects the styling of a transient message.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)
