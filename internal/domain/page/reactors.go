// Package page holds the small stateless reactors of the site: the news
// filter, the FAQ accordion, keyboard dismissal of dialogs, and tooltip
// activation. Each maps an event snapshot to a list of commands.
package page

import (
	"strings"

	"github.com/jsamuelsen11/campus-web/internal/domain/form"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

// Selectors of the page elements the reactors touch.
const (
	SelectorFilterButtons = ".news-filter-btn"
	SelectorFAQQuestions  = ".faq-question"
	SelectorFAQAnswers    = ".faq-answer"
	SelectorOpenModal     = ".modal.show"
	SelectorTooltips      = `[data-bs-toggle="tooltip"]`
)

// FilterAll shows every news card.
const FilterAll = "all"

// KeyEscape is the key that dismisses an open dialog.
const KeyEscape = "Escape"

// Load is the snapshot taken once the document is ready.
type Load struct {
	Forms    []form.Form
	Tooltips int
}

// NewsCard is one card and the text of its badge. HasBadge is false when the
// card carries no badge element at all.
type NewsCard struct {
	Ref      string
	Badge    string
	HasBadge bool
}

// NewsFilter is a click on one of the filter buttons.
type NewsFilter struct {
	ButtonRef string
	Filter    string
	Cards     []NewsCard
}

// FAQItem is a question and its answer. Open is true when the answer is
// currently displayed.
type FAQItem struct {
	QuestionRef string
	AnswerRef   string
	Open        bool
}

// FAQClick is a click on a question.
type FAQClick struct {
	Item FAQItem
}

// KeyDown is a key press anywhere on the page.
type KeyDown struct {
	Key       string
	ModalOpen bool
}

// FilterNews shows the cards whose badge contains the filter, hides the rest,
// and moves the active marker to the clicked button.
func FilterNews(ev NewsFilter) []ui.Command {
	cmds := make([]ui.Command, 0, len(ev.Cards)+2)
	for _, c := range ev.Cards {
		display := "none"
		if ev.Filter == FilterAll || (c.HasBadge && strings.Contains(strings.ToLower(c.Badge), ev.Filter)) {
			display = "block"
		}
		cmds = append(cmds, ui.SetStyle(ui.ByRef(c.Ref), "display", display))
	}
	return append(cmds,
		ui.RemoveClass(SelectorFilterButtons, ui.ClassActive),
		ui.AddClass(ui.ByRef(ev.ButtonRef), ui.ClassActive),
	)
}

// ToggleFAQ closes every answer and opens the clicked one if it was closed.
func ToggleFAQ(ev FAQClick) []ui.Command {
	cmds := []ui.Command{
		ui.SetStyle(SelectorFAQAnswers, "display", "none"),
		ui.RemoveClass(SelectorFAQQuestions, ui.ClassActive),
	}
	if !ev.Item.Open {
		cmds = append(cmds,
			ui.SetStyle(ui.ByRef(ev.Item.AnswerRef), "display", "block"),
			ui.AddClass(ui.ByRef(ev.Item.QuestionRef), ui.ClassActive),
		)
	}
	return cmds
}

// HandleKey hides the open dialog on Escape. Other keys are ignored.
func HandleKey(ev KeyDown) []ui.Command {
	if ev.Key != KeyEscape || !ev.ModalOpen {
		return nil
	}
	return []ui.Command{ui.HideDialog(SelectorOpenModal)}
}

// ActivateTooltips turns on every tooltip trigger present on the page.
func ActivateTooltips(count int) []ui.Command {
	if count <= 0 {
		return nil
	}
	return []ui.Command{ui.ActivateTooltip(SelectorTooltips)}
}
