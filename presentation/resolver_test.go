package presentation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-studio/domain"
	"github.com/goliatone/go-studio/presentation"
)

func TestResolvePrecedence(t *testing.T) {
	cases := []struct {
		name    string
		state   presentation.PublishState
		variant domain.Variant
		strike  bool
	}{
		{
			name:    "default is neutral",
			state:   presentation.PublishState{},
			variant: domain.VariantNeutral,
		},
		{
			name:    "ready alone is green",
			state:   presentation.PublishState{Ready: true},
			variant: domain.VariantGreen,
		},
		{
			name:    "live alone is blue",
			state:   presentation.PublishState{Live: true},
			variant: domain.VariantBlue,
		},
		{
			name:    "errors outrank live",
			state:   presentation.PublishState{Errors: true, Live: true},
			variant: domain.VariantRed,
		},
		{
			name:    "errors outrank everything",
			state:   presentation.PublishState{Errors: true, Warnings: true, Gated: true, StaffOnly: true, Live: true, Ready: true},
			variant: domain.VariantRed,
		},
		{
			name:    "warnings outrank gated",
			state:   presentation.PublishState{Warnings: true, Gated: true},
			variant: domain.VariantYellow,
		},
		{
			name:    "staff only outranks live",
			state:   presentation.PublishState{StaffOnly: true, Live: true},
			variant: domain.VariantBlack,
		},
		{
			name:    "hidden from toc is black",
			state:   presentation.PublishState{HiddenFromTOC: true},
			variant: domain.VariantBlack,
		},
		{
			name:    "gated is black",
			state:   presentation.PublishState{Gated: true},
			variant: domain.VariantBlack,
		},
		{
			name:    "hidden from toc and staff only share black",
			state:   presentation.PublishState{HiddenFromTOC: true, StaffOnly: true},
			variant: domain.VariantBlack,
		},
		{
			name:    "scheduled staff only strikes release",
			state:   presentation.PublishState{StaffOnly: true, Scheduled: true},
			variant: domain.VariantBlack,
			strike:  true,
		},
		{
			name:    "scheduled live keeps release intact",
			state:   presentation.PublishState{Live: true, Scheduled: true},
			variant: domain.VariantBlue,
		},
		{
			name:    "scheduled ready keeps release intact",
			state:   presentation.PublishState{Ready: true, Scheduled: true},
			variant: domain.VariantGreen,
		},
		{
			name:    "scheduled errors keeps release intact",
			state:   presentation.PublishState{Errors: true, StaffOnly: true, Scheduled: true},
			variant: domain.VariantRed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := presentation.Resolve(tc.state)
			if got.Variant != tc.variant {
				t.Fatalf("expected variant %s got %s", tc.variant, got.Variant)
			}
			if got.StrikethroughRelease != tc.strike {
				t.Fatalf("expected strikethrough %v got %v", tc.strike, got.StrikethroughRelease)
			}
		})
	}
}

func TestResolveIsTotal(t *testing.T) {
	// Every combination of the seven color facets must land on a defined variant.
	for mask := 0; mask < 1<<7; mask++ {
		state := presentation.PublishState{
			Ready:         mask&1 != 0,
			Live:          mask&2 != 0,
			Warnings:      mask&4 != 0,
			Errors:        mask&8 != 0,
			StaffOnly:     mask&16 != 0,
			HiddenFromTOC: mask&32 != 0,
			Gated:         mask&64 != 0,
		}
		got := presentation.Resolve(state)
		if !got.Variant.IsValid() {
			t.Fatalf("mask %07b resolved to undefined variant %q", mask, got.Variant)
		}
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	state := presentation.PublishState{Warnings: true, Live: true, Scheduled: true}
	first := presentation.Resolve(state)
	second := presentation.Resolve(state)
	if first != second {
		t.Fatalf("expected identical results, got %+v then %+v", first, second)
	}
}

func TestSnapshotStateMissingFacet(t *testing.T) {
	snapshot := presentation.Snapshot{}.WithDefaults()
	snapshot.Live = nil

	_, err := snapshot.State()
	if err == nil {
		t.Fatalf("expected error for missing facet")
	}
	if !errors.Is(err, presentation.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState got %v", err)
	}

	var invalid *presentation.InvalidStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError got %T", err)
	}
	if invalid.Facet != domain.FacetLive {
		t.Fatalf("expected facet %s got %s", domain.FacetLive, invalid.Facet)
	}
}

func TestSnapshotWithDefaults(t *testing.T) {
	live := true
	snapshot := presentation.Snapshot{Live: &live}.WithDefaults()

	state, err := snapshot.State()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if !state.Live {
		t.Fatalf("expected live to survive defaulting")
	}
	if state.Errors || state.Warnings || state.StaffOnly || state.Scheduled {
		t.Fatalf("expected missing facets defaulted to false, got %+v", state)
	}
}

func TestResolveSnapshot(t *testing.T) {
	staffOnly := true
	scheduled := true
	snapshot := presentation.Snapshot{StaffOnly: &staffOnly, Scheduled: &scheduled}.WithDefaults()

	got, err := presentation.ResolveSnapshot(snapshot)
	if err != nil {
		t.Fatalf("resolve snapshot: %v", err)
	}
	if got.Variant != domain.VariantBlack {
		t.Fatalf("expected black variant got %s", got.Variant)
	}
	if !got.StrikethroughRelease {
		t.Fatalf("expected strikethrough for scheduled staff-only unit")
	}
}

func TestResolveSnapshotIncomplete(t *testing.T) {
	if _, err := presentation.ResolveSnapshot(presentation.Snapshot{}); !errors.Is(err, presentation.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState got %v", err)
	}
}
