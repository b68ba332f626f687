package presentation

import (
	"github.com/goliatone/go-studio/internal/domain"
)

// Snapshot is the read-only publish-state payload supplied by the upstream
// content/policy service for a single unit. Facets decode as pointers so a
// missing field is distinguishable from an explicit false.
type Snapshot struct {
	Ready         *bool `json:"ready"`
	Live          *bool `json:"live"`
	Warnings      *bool `json:"warnings"`
	Errors        *bool `json:"errors"`
	StaffOnly     *bool `json:"staff_only"`
	HiddenFromTOC *bool `json:"hidden_from_toc"`
	Gated         *bool `json:"gated"`
	Scheduled     *bool `json:"scheduled"`
}

// WithDefaults returns a copy of the snapshot with every missing facet set to
// false. Callers that tolerate partial upstream payloads apply this before
// materializing a PublishState.
func (s Snapshot) WithDefaults() Snapshot {
	fill := func(v *bool) *bool {
		if v != nil {
			return v
		}
		value := false
		return &value
	}
	return Snapshot{
		Ready:         fill(s.Ready),
		Live:          fill(s.Live),
		Warnings:      fill(s.Warnings),
		Errors:        fill(s.Errors),
		StaffOnly:     fill(s.StaffOnly),
		HiddenFromTOC: fill(s.HiddenFromTOC),
		Gated:         fill(s.Gated),
		Scheduled:     fill(s.Scheduled),
	}
}

// State materializes the snapshot into a fully-populated PublishState. It
// fails fast with an InvalidStateError naming the first missing facet so
// upstream data bugs surface instead of silently defaulting.
func (s Snapshot) State() (PublishState, error) {
	facets := []struct {
		name  domain.Facet
		value *bool
	}{
		{domain.FacetReady, s.Ready},
		{domain.FacetLive, s.Live},
		{domain.FacetWarnings, s.Warnings},
		{domain.FacetErrors, s.Errors},
		{domain.FacetStaffOnly, s.StaffOnly},
		{domain.FacetHiddenFromTOC, s.HiddenFromTOC},
		{domain.FacetGated, s.Gated},
		{domain.FacetScheduled, s.Scheduled},
	}
	for _, facet := range facets {
		if facet.value == nil {
			return PublishState{}, &InvalidStateError{Facet: facet.name}
		}
	}
	return PublishState{
		Ready:         *s.Ready,
		Live:          *s.Live,
		Warnings:      *s.Warnings,
		Errors:        *s.Errors,
		StaffOnly:     *s.StaffOnly,
		HiddenFromTOC: *s.HiddenFromTOC,
		Gated:         *s.Gated,
		Scheduled:     *s.Scheduled,
	}, nil
}

// PublishState is the fully-populated publish/visibility state of a unit at
// the moment its container view renders. Values are constructed fresh per
// render pass and never mutated.
type PublishState struct {
	Ready         bool
	Live          bool
	Warnings      bool
	Errors        bool
	StaffOnly     bool
	HiddenFromTOC bool
	Gated         bool
	Scheduled     bool
}

// Presentation is the visual treatment selected for a publish state.
type Presentation struct {
	Variant              domain.Variant
	StrikethroughRelease bool
}
