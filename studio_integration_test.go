package studio_test

import (
	"context"
	"testing"
	"time"

	studio "github.com/goliatone/go-studio"
	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/domain"
)

func TestModule_SQLiteStorage(t *testing.T) {
	ctx := context.Background()

	cfg := studio.DefaultConfig()
	cfg.Storage.Provider = "sqlite"
	cfg.Storage.DSN = "file:studio_module_test?mode=memory&cache=shared&_fk=1"
	cfg.Cache.Enabled = true
	cfg.Cache.DefaultTTL = 50 * time.Millisecond

	module, err := studio.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })

	if err := module.InitSchema(ctx); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	svc := module.Containers()
	created, err := svc.CreateContainer(ctx, container.CreateContainerRequest{
		Slug:  "persisted-outline",
		Title: "Persisted outline",
	})
	if err != nil {
		t.Fatalf("create container: %v", err)
	}

	releaseWith := "Cohort B"
	releaseDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	publishAt := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	unit, err := svc.AddUnit(ctx, container.AddUnitRequest{
		ContainerID: created.ID,
		Title:       "Staff orientation",
		Status:      string(domain.StatusReady),
		StaffOnly:   true,
		PublishAt:   &publishAt,
		ReleaseDate: &releaseDate,
		ReleaseWith: &releaseWith,
	})
	if err != nil {
		t.Fatalf("add unit: %v", err)
	}

	view, err := svc.RenderContainer(ctx, created.ID)
	if err != nil {
		t.Fatalf("render container: %v", err)
	}
	if len(view.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(view.Modules))
	}
	bar := view.Modules[0].Bar
	if bar.Variant != domain.VariantBlack {
		t.Fatalf("expected black variant, got %s", bar.Variant)
	}
	if !bar.StrikethroughRelease {
		t.Fatal("expected struck release for scheduled staff-only unit")
	}
	if bar.ReleaseLine != "Released: Sep 15, 2026 with Cohort B" {
		t.Fatalf("unexpected release line %q", bar.ReleaseLine)
	}

	gated := true
	staffOnly := false
	if _, err := svc.UpdatePublishFlags(ctx, container.UpdatePublishFlagsRequest{
		UnitID:    unit.ID,
		StaffOnly: &staffOnly,
		Gated:     &gated,
	}); err != nil {
		t.Fatalf("update flags: %v", err)
	}

	refreshed, err := svc.GetUnit(ctx, unit.ID)
	if err != nil {
		t.Fatalf("get unit: %v", err)
	}
	if refreshed.StaffOnly || !refreshed.Gated {
		t.Fatalf("expected flag patch to persist, got staff_only=%v gated=%v", refreshed.StaffOnly, refreshed.Gated)
	}
}
