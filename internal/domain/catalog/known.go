package catalog

// Dialogs and placeholders of the catalogs the site ships with.
var (
	ProgramsDialog = Dialog{
		Modal: "#programModal",
		Title: "#programModalLabel",
		Body:  "#programModalBody",
	}
	ClubsDialog = Dialog{
		Modal: "#clubModal",
		Title: "#clubModalTitle",
		Body:  "#clubModalBody",
	}

	ProgramsPlaceholder = Entry{
		Title:  "Program Details",
		Markup: "<p>Program details not available at the moment.</p>",
	}
	ClubsPlaceholder = Entry{
		Title:  "Club Details",
		Markup: "<p>Club details not available at the moment.</p>",
	}
)

// DialogFor returns the dialog and placeholder of a known catalog.
func DialogFor(n Name) (Dialog, Entry, bool) {
	switch n {
	case NamePrograms:
		return ProgramsDialog, ProgramsPlaceholder, true
	case NameClubs:
		return ClubsDialog, ClubsPlaceholder, true
	default:
		return Dialog{}, Entry{}, false
	}
}

// Names lists every catalog the site ships with.
func Names() []Name {
	return []Name{NamePrograms, NameClubs}
}
