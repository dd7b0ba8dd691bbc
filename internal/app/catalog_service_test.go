package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/domain/ui"
	"github.com/jsamuelsen11/campus-web/mocks"
)

func testCatalogs(t *testing.T) map[catalog.Name]*catalog.Catalog {
	t.Helper()

	clubs, err := catalog.New(catalog.NameClubs, catalog.ClubsDialog, catalog.ClubsPlaceholder, []catalog.Entry{
		{Key: "IEEE", Title: "IEEE Student Chapter", Markup: "<p>IEEE</p>"},
	})
	if err != nil {
		t.Fatalf("catalog.New(clubs) error = %v", err)
	}
	programs, err := catalog.New(catalog.NamePrograms, catalog.ProgramsDialog, catalog.ProgramsPlaceholder, []catalog.Entry{
		{Key: "computer", Title: "Computer Engineering", Markup: "<p>CE</p>"},
	})
	if err != nil {
		t.Fatalf("catalog.New(programs) error = %v", err)
	}
	return map[catalog.Name]*catalog.Catalog{
		catalog.NameClubs:    clubs,
		catalog.NamePrograms: programs,
	}
}

// --- LoadCatalogs ---

func TestLoadCatalogs(t *testing.T) {
	t.Parallel()

	t.Run("loads every catalog", func(t *testing.T) {
		t.Parallel()
		want := testCatalogs(t)
		src := mocks.NewMockCatalogSource(t)
		src.EXPECT().Name().Return("embedded")
		src.EXPECT().Load(mock.Anything, catalog.NameClubs).Return(want[catalog.NameClubs], nil)
		src.EXPECT().Load(mock.Anything, catalog.NamePrograms).Return(want[catalog.NamePrograms], nil)

		got, err := LoadCatalogs(context.Background(), src,
			[]catalog.Name{catalog.NameClubs, catalog.NamePrograms}, discardLogger())
		if err != nil {
			t.Fatalf("LoadCatalogs() error = %v", err)
		}
		if len(got) != 2 || got[catalog.NameClubs] != want[catalog.NameClubs] {
			t.Errorf("LoadCatalogs() = %v, want both catalogs", got)
		}
	})

	t.Run("joins failures", func(t *testing.T) {
		t.Parallel()
		src := mocks.NewMockCatalogSource(t)
		src.EXPECT().Name().Return("remote")
		src.EXPECT().Load(mock.Anything, catalog.NameClubs).Return(nil, domain.ErrUnavailable)
		src.EXPECT().Load(mock.Anything, catalog.NamePrograms).Return(nil, domain.ErrNotFound)

		_, err := LoadCatalogs(context.Background(), src,
			[]catalog.Name{catalog.NameClubs, catalog.NamePrograms}, nil)
		if !errors.Is(err, domain.ErrUnavailable) || !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("LoadCatalogs() error = %v, want both causes", err)
		}
	})
}

// --- Show / Lookup ---

func TestCatalogService_Show(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(testCatalogs(t), testMetrics(t), discardLogger())

	tests := []struct {
		name    string
		catalog catalog.Name
		key     string
		want    ui.Patch
		wantErr error
	}{
		{
			name:    "known club",
			catalog: catalog.NameClubs,
			key:     "IEEE",
			want: ui.Patch{
				{Op: ui.OpSetText, Target: "#clubModalTitle", Value: "IEEE Student Chapter"},
				{Op: ui.OpSetHTML, Target: "#clubModalBody", HTML: "<p>IEEE</p>"},
				{Op: ui.OpShowDialog, Target: "#clubModal"},
			},
		},
		{
			name:    "unknown program falls back to placeholder",
			catalog: catalog.NamePrograms,
			key:     "nonexistent-key",
			want: ui.Patch{
				{Op: ui.OpSetText, Target: "#programModalLabel", Value: "Program Details"},
				{Op: ui.OpSetHTML, Target: "#programModalBody", HTML: "<p>Program details not available at the moment.</p>"},
				{Op: ui.OpShowDialog, Target: "#programModal"},
			},
		},
		{
			name:    "unknown catalog",
			catalog: "events",
			key:     "IEEE",
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.Show(context.Background(), tt.catalog, tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Show() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Show() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalogService_Lookup(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(testCatalogs(t), testMetrics(t), nil)

	e, err := svc.Lookup(context.Background(), catalog.NameClubs, "IEEE")
	if err != nil || e.Title != "IEEE Student Chapter" {
		t.Errorf("Lookup(IEEE) = %+v, %v", e, err)
	}
	if _, err := svc.Lookup(context.Background(), catalog.NameClubs, "Chess"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Lookup(Chess) error = %v, want ErrNotFound", err)
	}
}

func TestCatalogService_HealthCheck(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(testCatalogs(t), testMetrics(t), discardLogger())
	if err := svc.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
	if svc.Name() != "catalogs" {
		t.Errorf("Name() = %q", svc.Name())
	}

	empty := NewCatalogService(map[catalog.Name]*catalog.Catalog{}, testMetrics(t), discardLogger())
	if err := empty.HealthCheck(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("HealthCheck() on empty set = %v, want ErrUnavailable", err)
	}
}
