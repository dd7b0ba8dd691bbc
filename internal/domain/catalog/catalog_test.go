package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
)

func newClubs(t *testing.T) *Catalog {
	t.Helper()

	c, err := New(NameClubs, ClubsDialog, ClubsPlaceholder, []Entry{
		{Key: "IEEE", Title: "IEEE Student Chapter", Markup: "<p>IEEE</p>"},
		{Key: "Robotics", Title: "Robotics Club", Markup: "<p>Robots</p>"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	c := newClubs(t)

	got, ok := c.Lookup("IEEE")
	if !ok {
		t.Fatal("Lookup(IEEE) found = false, want true")
	}
	if got.Title != "IEEE Student Chapter" {
		t.Errorf("Lookup(IEEE).Title = %q", got.Title)
	}

	if _, ok := c.Lookup("nonexistent-key"); ok {
		t.Error("Lookup(nonexistent-key) found = true, want false")
	}
	if _, ok := c.Lookup("ieee"); ok {
		t.Error("Lookup is case sensitive, ieee must miss")
	}
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()

	c := newClubs(t)

	tests := []struct {
		name string
		key  string
		want Entry
	}{
		{
			name: "known key",
			key:  "Robotics",
			want: Entry{Key: "Robotics", Title: "Robotics Club", Markup: "<p>Robots</p>"},
		},
		{
			name: "unknown key yields placeholder",
			key:  "nonexistent-key",
			want: ClubsPlaceholder,
		},
		{
			name: "empty key yields placeholder",
			key:  "",
			want: ClubsPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, c.Resolve(tt.key)); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestCatalog_Display(t *testing.T) {
	t.Parallel()

	c := newClubs(t)
	got := c.Display(c.Resolve("IEEE"))
	want := []ui.Command{
		{Op: ui.OpSetText, Target: "#clubModalTitle", Value: "IEEE Student Chapter"},
		{Op: ui.OpSetHTML, Target: "#clubModalBody", HTML: "<p>IEEE</p>"},
		{Op: ui.OpShowDialog, Target: "#clubModal"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Display() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_RejectsBadEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name: "duplicate key",
			entries: []Entry{
				{Key: "civil", Title: "Civil Engineering"},
				{Key: "civil", Title: "Civil Engineering II"},
			},
			wantErr: domain.ErrConflict,
		},
		{
			name:    "blank key",
			entries: []Entry{{Key: " ", Title: "Nothing"}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing title",
			entries: []Entry{{Key: "civil"}},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(NamePrograms, ProgramsDialog, ProgramsPlaceholder, tt.entries)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_Keys(t *testing.T) {
	t.Parallel()

	c := newClubs(t)
	if diff := cmp.Diff([]string{"IEEE", "Robotics"}, c.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestName_IsValid(t *testing.T) {
	t.Parallel()

	for _, n := range []Name{NameClubs, NamePrograms} {
		if !n.IsValid() {
			t.Errorf("%q.IsValid() = false", n)
		}
		if _, _, ok := DialogFor(n); !ok {
			t.Errorf("DialogFor(%q) ok = false", n)
		}
	}
	if Name("events").IsValid() {
		t.Error(`Name("events").IsValid() = true`)
	}
}
