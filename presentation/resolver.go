package presentation

import (
	"github.com/goliatone/go-studio/internal/domain"
)

// Resolve maps a publish state to its bar-module presentation. Precedence when
// several facets are simultaneously true: errors, then warnings, then the
// black family (gated, staff only, hidden from TOC), then live, then ready.
// This ordering is a user-visible contract and must not change.
//
// The release strikethrough applies only to scheduled units in the black
// family; live or staged units keep their release copy intact even when a
// future release time exists.
func Resolve(state PublishState) Presentation {
	variant := domain.VariantNeutral
	switch {
	case state.Errors:
		variant = domain.VariantRed
	case state.Warnings:
		variant = domain.VariantYellow
	case state.Gated, state.StaffOnly, state.HiddenFromTOC:
		variant = domain.VariantBlack
	case state.Live:
		variant = domain.VariantBlue
	case state.Ready:
		variant = domain.VariantGreen
	}

	return Presentation{
		Variant:              variant,
		StrikethroughRelease: state.Scheduled && variant == domain.VariantBlack,
	}
}

// ResolveSnapshot materializes the snapshot and resolves its presentation in
// one step. A snapshot with missing facets yields an InvalidStateError; the
// render layer is expected to fall back to the neutral variant in that case.
func ResolveSnapshot(snapshot Snapshot) (Presentation, error) {
	state, err := snapshot.State()
	if err != nil {
		return Presentation{}, err
	}
	return Resolve(state), nil
}
