package ui

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Command
		want Command
	}{
		{
			name: "remove several classes",
			got:  RemoveClass("#email", ClassValid, ClassInvalid),
			want: Command{Op: OpRemoveClass, Target: "#email", Name: "is-valid is-invalid"},
		},
		{
			name: "show drops d-none",
			got:  Show("#successMessage"),
			want: Command{Op: OpRemoveClass, Target: "#successMessage", Name: "d-none"},
		},
		{
			name: "hide adds d-none",
			got:  Hide("#registrationForm"),
			want: Command{Op: OpAddClass, Target: "#registrationForm", Name: "d-none"},
		},
		{
			name: "disabled renders as string",
			got:  SetDisabled("#submit", true),
			want: Command{Op: OpSetDisabled, Target: "#submit", Value: "true"},
		},
		{
			name: "enabled renders as string",
			got:  SetDisabled("#submit", false),
			want: Command{Op: OpSetDisabled, Target: "#submit", Value: "false"},
		},
		{
			name: "style property",
			got:  SetStyle("#bar", "width", "50%"),
			want: Command{Op: OpSetStyle, Target: "#bar", Name: "width", Value: "50%"},
		},
		{
			name: "attribute",
			got:  SetAttr("#bar", "aria-valuenow", "50"),
			want: Command{Op: OpSetAttr, Target: "#bar", Name: "aria-valuenow", Value: "50"},
		},
		{
			name: "text",
			got:  SetText("#count", "12/500"),
			want: Command{Op: OpSetText, Target: "#count", Value: "12/500"},
		},
		{
			name: "inner html",
			got:  SetHTML("#submit", "<span></span>"),
			want: Command{Op: OpSetHTML, Target: "#submit", HTML: "<span></span>"},
		},
		{
			name: "value",
			got:  SetValue(`[name="timestamp"]`, "tok"),
			want: Command{Op: OpSetValue, Target: `[name="timestamp"]`, Value: "tok"},
		},
		{
			name: "scroll is smooth",
			got:  ScrollIntoView("#successMessage"),
			want: Command{Op: OpScrollIntoView, Target: "#successMessage", Value: "smooth"},
		},
		{
			name: "reset form",
			got:  ResetForm("#contactForm"),
			want: Command{Op: OpResetForm, Target: "#contactForm"},
		},
		{
			name: "remove",
			got:  Remove("#alert-1"),
			want: Command{Op: OpRemove, Target: "#alert-1"},
		},
		{
			name: "tooltip",
			got:  ActivateTooltip("#tip"),
			want: Command{Op: OpActivateTooltip, Target: "#tip"},
		},
		{
			name: "hidden input",
			got:  AppendInput("#contactForm", map[string]string{"name": "website"}, true),
			want: Command{
				Op:     OpAppendInput,
				Target: "#contactForm",
				Attrs:  map[string]string{"name": "website"},
				Value:  "hidden",
			},
		},
		{
			name: "schedule nests commands",
			got:  Schedule(2*time.Second, Show("#a"), Hide("#b")),
			want: Command{
				Op:    OpSchedule,
				Delay: 2 * time.Second,
				Then: []Command{
					{Op: OpRemoveClass, Target: "#a", Name: "d-none"},
					{Op: OpAddClass, Target: "#b", Name: "d-none"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatch_Append(t *testing.T) {
	t.Parallel()

	var p Patch
	if !p.Empty() {
		t.Fatal("zero Patch must be empty")
	}
	p = p.Append(ShowDialog("#m"), HideDialog("#m"))
	if len(p) != 2 || p.Empty() {
		t.Errorf("len(Patch) = %d, want 2", len(p))
	}
	if ByID("clubModal") != "#clubModal" {
		t.Errorf("ByID() = %q", ByID("clubModal"))
	}
}
