package domain

// Variant identifies the color treatment a bar module renders with.
type Variant string

const (
	// VariantGreen decorates units staged for release.
	VariantGreen Variant = "green"
	// VariantBlue decorates units currently live.
	VariantBlue Variant = "blue"
	// VariantYellow decorates units with non-fatal validation warnings.
	VariantYellow Variant = "yellow"
	// VariantRed decorates units with fatal validation errors.
	VariantRed Variant = "red"
	// VariantBlack decorates access-restricted units (gated, staff only,
	// hidden from the table of contents).
	VariantBlack Variant = "black"
	// VariantNeutral is the undecorated fallback when no facet applies.
	VariantNeutral Variant = "neutral"
)

// IsValid reports whether the variant is one of the defined values.
func (v Variant) IsValid() bool {
	switch v {
	case VariantGreen, VariantBlue, VariantYellow, VariantRed, VariantBlack, VariantNeutral:
		return true
	}
	return false
}

// String returns the string representation of the variant.
func (v Variant) String() string {
	return string(v)
}

// Facet names one boolean attribute of a unit's publish/visibility state.
// The names match the wire fields of the upstream snapshot payload.
type Facet string

const (
	FacetReady         Facet = "ready"
	FacetLive          Facet = "live"
	FacetWarnings      Facet = "warnings"
	FacetErrors        Facet = "errors"
	FacetStaffOnly     Facet = "staff_only"
	FacetHiddenFromTOC Facet = "hidden_from_toc"
	FacetGated         Facet = "gated"
	FacetScheduled     Facet = "scheduled"
)
