package form

import (
	"strconv"
	"unicode/utf8"

	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

// Character counter thresholds for the contact message.
const (
	counterWarnAbove  = 400
	counterLimitAbove = 500
)

// Progress returns the share of required fields that are filled, in percent.
// Every required element counts on its own, so each radio in a required group
// contributes. A form without required fields reports 0.
func Progress(f *Form) float64 {
	var total, done int
	for i := range f.Fields {
		if !f.Fields[i].Required {
			continue
		}
		total++
		if filled(f.Fields[i], f) {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

// ProgressCommands writes p to the progress indicator.
func ProgressCommands(p float64) []ui.Command {
	v := strconv.FormatFloat(p, 'f', -1, 64)
	target := ui.ByID(IDProgress)
	return []ui.Command{
		ui.SetStyle(target, "width", v+"%"),
		ui.SetAttr(target, "aria-valuenow", v),
	}
}

// CounterCommands updates the character counter for the contact message.
func CounterCommands(message string) []ui.Command {
	n := utf8.RuneCountInString(message)
	color := "inherit"
	switch {
	case n > counterLimitAbove:
		color = "var(--accent-color)"
	case n > counterWarnAbove:
		color = "var(--warning-color)"
	}
	target := ui.ByID(IDCharCount)
	return []ui.Command{
		ui.SetText(target, strconv.Itoa(n)),
		ui.SetStyle(target, "color", color),
	}
}
