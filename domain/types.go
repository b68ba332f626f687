package domain

import internaldomain "github.com/goliatone/go-studio/internal/domain"

// Status represents lifecycle states for studio content units.
type Status = internaldomain.Status

const (
	// StatusDraft indicates a unit still under preparation.
	StatusDraft = internaldomain.StatusDraft
	// StatusReady identifies a unit staged for release but not yet live.
	StatusReady = internaldomain.StatusReady
	// StatusLive identifies a unit published and visible to learners.
	StatusLive = internaldomain.StatusLive
	// StatusArchived marks a unit retained for history but no longer visible.
	StatusArchived = internaldomain.StatusArchived
	// StatusScheduled marks a unit with a future release time configured.
	StatusScheduled = internaldomain.StatusScheduled
)

// Variant identifies the color treatment a bar module renders with.
type Variant = internaldomain.Variant

const (
	VariantGreen   = internaldomain.VariantGreen
	VariantBlue    = internaldomain.VariantBlue
	VariantYellow  = internaldomain.VariantYellow
	VariantRed     = internaldomain.VariantRed
	VariantBlack   = internaldomain.VariantBlack
	VariantNeutral = internaldomain.VariantNeutral
)

// Facet names one boolean attribute of a unit's publish/visibility state.
type Facet = internaldomain.Facet

const (
	FacetReady         = internaldomain.FacetReady
	FacetLive          = internaldomain.FacetLive
	FacetWarnings      = internaldomain.FacetWarnings
	FacetErrors        = internaldomain.FacetErrors
	FacetStaffOnly     = internaldomain.FacetStaffOnly
	FacetHiddenFromTOC = internaldomain.FacetHiddenFromTOC
	FacetGated         = internaldomain.FacetGated
	FacetScheduled     = internaldomain.FacetScheduled
)
