package container

import (
	"time"

	"github.com/goliatone/go-studio/internal/domain"
	"github.com/goliatone/go-studio/presentation"
)

// SnapshotForUnit derives the publish-state snapshot a unit presents with at
// the given instant. All facets are populated, so the resulting snapshot never
// trips the resolver's InvalidState path.
func SnapshotForUnit(unit *Unit, now time.Time) presentation.Snapshot {
	status := effectiveUnitStatus(unit, now)

	live := status == domain.StatusLive
	// Staged units stay "ready" while a future release is pending; the
	// scheduled facet is an orthogonal modifier, not a replacement state.
	ready := !live && status != domain.StatusArchived &&
		unit != nil && domain.Status(unit.Status) == domain.StatusReady
	scheduled := unit != nil && unit.PublishAt != nil && unit.PublishAt.After(now)
	warnings := unit != nil && unit.WarningCount > 0
	failures := unit != nil && unit.ErrorCount > 0
	staffOnly := unit != nil && unit.StaffOnly
	hidden := unit != nil && unit.HiddenFromTOC
	gated := unit != nil && unit.Gated

	return presentation.Snapshot{
		Ready:         &ready,
		Live:          &live,
		Warnings:      &warnings,
		Errors:        &failures,
		StaffOnly:     &staffOnly,
		HiddenFromTOC: &hidden,
		Gated:         &gated,
		Scheduled:     &scheduled,
	}
}

// effectiveUnitStatus folds the persisted status together with the publish
// and unpublish windows. A passed unpublish time archives the unit; a future
// publish time marks it scheduled; a passed publish or published time makes
// it live.
func effectiveUnitStatus(unit *Unit, now time.Time) domain.Status {
	if unit == nil {
		return domain.StatusDraft
	}
	status := domain.Status(unit.Status)
	if status == "" {
		status = domain.StatusDraft
	}
	if unit.UnpublishAt != nil && !unit.UnpublishAt.After(now) {
		return domain.StatusArchived
	}
	if unit.PublishAt != nil {
		if unit.PublishAt.After(now) {
			return domain.StatusScheduled
		}
		return domain.StatusLive
	}
	if unit.PublishedAt != nil && !unit.PublishedAt.After(now) {
		return domain.StatusLive
	}
	return status
}
