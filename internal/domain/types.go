package domain

// Status represents lifecycle states for studio content units
type Status string

const (
	// StatusDraft indicates a unit still under preparation
	StatusDraft Status = "draft"
	// StatusReady identifies a unit staged for release but not yet live
	StatusReady Status = "ready"
	// StatusLive identifies a unit published and visible to learners
	StatusLive Status = "live"
	// StatusArchived marks a unit retained for history but no longer visible
	StatusArchived Status = "archived"
	// StatusScheduled marks a unit with a future release time configured
	StatusScheduled Status = "scheduled"
)
