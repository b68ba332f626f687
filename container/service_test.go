package container_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/domain"
)

func newTestService(t *testing.T) (container.Service, *container.MemoryContainerRepository, *container.MemoryUnitRepository) {
	t.Helper()
	containers := container.NewMemoryContainerRepository()
	units := container.NewMemoryUnitRepository()
	svc := container.NewService(containers, units, container.WithClock(func() time.Time {
		return frozen
	}))
	return svc, containers, units
}

func seedContainer(t *testing.T, svc container.Service) *container.Container {
	t.Helper()
	record, err := svc.CreateContainer(context.Background(), container.CreateContainerRequest{
		Slug:      "intro-to-go",
		Title:     "Intro to Go",
		CreatedBy: uuid.New(),
		UpdatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("create container: %v", err)
	}
	return record
}

func TestServiceCreateContainer(t *testing.T) {
	svc, _, _ := newTestService(t)

	record := seedContainer(t, svc)
	if record.Slug != "intro-to-go" {
		t.Fatalf("expected slug intro-to-go got %q", record.Slug)
	}

	if _, err := svc.CreateContainer(context.Background(), container.CreateContainerRequest{Slug: "intro-to-go"}); !errors.Is(err, container.ErrContainerSlugExists) {
		t.Fatalf("expected ErrContainerSlugExists got %v", err)
	}
}

func TestServiceCreateContainerValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.CreateContainer(context.Background(), container.CreateContainerRequest{}); !errors.Is(err, container.ErrContainerSlugRequired) {
		t.Fatalf("expected ErrContainerSlugRequired got %v", err)
	}
	if _, err := svc.CreateContainer(context.Background(), container.CreateContainerRequest{Slug: "Not A Slug!"}); !errors.Is(err, container.ErrContainerSlugInvalid) {
		t.Fatalf("expected ErrContainerSlugInvalid got %v", err)
	}
}

func TestServiceAddUnitAppendsPosition(t *testing.T) {
	svc, _, _ := newTestService(t)
	record := seedContainer(t, svc)

	first, err := svc.AddUnit(context.Background(), container.AddUnitRequest{
		ContainerID: record.ID,
		Title:       "Welcome",
		Status:      "live",
	})
	if err != nil {
		t.Fatalf("add unit: %v", err)
	}
	if first.Position != 0 {
		t.Fatalf("expected position 0 got %d", first.Position)
	}

	second, err := svc.AddUnit(context.Background(), container.AddUnitRequest{
		ContainerID: record.ID,
		Title:       "Setup",
		Status:      "ready",
	})
	if err != nil {
		t.Fatalf("add unit: %v", err)
	}
	if second.Position != 1 {
		t.Fatalf("expected position 1 got %d", second.Position)
	}
	if second.EffectiveStatus != domain.StatusReady {
		t.Fatalf("expected effective status ready got %s", second.EffectiveStatus)
	}
}

func TestServiceAddUnitValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	record := seedContainer(t, svc)

	if _, err := svc.AddUnit(context.Background(), container.AddUnitRequest{Title: "x"}); !errors.Is(err, container.ErrContainerIDRequired) {
		t.Fatalf("expected ErrContainerIDRequired got %v", err)
	}
	if _, err := svc.AddUnit(context.Background(), container.AddUnitRequest{ContainerID: record.ID}); !errors.Is(err, container.ErrUnitTitleRequired) {
		t.Fatalf("expected ErrUnitTitleRequired got %v", err)
	}
	if _, err := svc.AddUnit(context.Background(), container.AddUnitRequest{ContainerID: record.ID, Title: "x", Status: "retired"}); !errors.Is(err, container.ErrUnitStatusInvalid) {
		t.Fatalf("expected ErrUnitStatusInvalid got %v", err)
	}

	var notFound *container.NotFoundError
	if _, err := svc.AddUnit(context.Background(), container.AddUnitRequest{ContainerID: uuid.New(), Title: "x"}); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError got %v", err)
	}
}

func TestServiceRenderContainer(t *testing.T) {
	svc, _, _ := newTestService(t)
	record := seedContainer(t, svc)

	releaseWith := "Module 2"
	addUnit := func(req container.AddUnitRequest) *container.Unit {
		req.ContainerID = record.ID
		unit, err := svc.AddUnit(context.Background(), req)
		if err != nil {
			t.Fatalf("add unit %q: %v", req.Title, err)
		}
		return unit
	}

	addUnit(container.AddUnitRequest{Title: "Live unit", Status: "live", PublishAt: timePtr(frozen.Add(-time.Hour))})
	addUnit(container.AddUnitRequest{Title: "Staged unit", Status: "ready"})
	addUnit(container.AddUnitRequest{Title: "Broken unit", Status: "live", PublishAt: nil, ErrorCount: 3})
	staff := addUnit(container.AddUnitRequest{
		Title:       "Staff notes",
		Status:      "ready",
		StaffOnly:   true,
		PublishAt:   timePtr(frozen.Add(72 * time.Hour)),
		ReleaseDate: timePtr(frozen.Add(72 * time.Hour)),
		ReleaseWith: &releaseWith,
	})

	view, err := svc.RenderContainer(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("render container: %v", err)
	}
	if len(view.Modules) != 4 {
		t.Fatalf("expected 4 modules got %d", len(view.Modules))
	}

	for i := 1; i < len(view.Modules); i++ {
		if view.Modules[i-1].Unit.Position > view.Modules[i].Unit.Position {
			t.Fatalf("modules out of order at index %d", i)
		}
	}

	if view.Summary.Live != 1 || view.Summary.Ready != 1 || view.Summary.Errors != 1 || view.Summary.Restricted != 1 {
		t.Fatalf("unexpected summary %+v", view.Summary)
	}

	var staffModule *container.ModuleView
	for i := range view.Modules {
		if view.Modules[i].Unit.ID == staff.ID {
			staffModule = &view.Modules[i]
		}
	}
	if staffModule == nil {
		t.Fatalf("staff module missing from view")
	}
	if staffModule.Bar.Variant != domain.VariantBlack {
		t.Fatalf("expected black variant got %s", staffModule.Bar.Variant)
	}
	if !staffModule.Bar.StrikethroughRelease {
		t.Fatalf("expected struck release copy for scheduled staff-only unit")
	}
	if staffModule.Bar.ReleaseLine == "" {
		t.Fatalf("expected release line for staff module")
	}
}

func TestServiceUpdatePublishFlags(t *testing.T) {
	svc, _, _ := newTestService(t)
	record := seedContainer(t, svc)

	unit, err := svc.AddUnit(context.Background(), container.AddUnitRequest{
		ContainerID: record.ID,
		Title:       "Welcome",
		Status:      "live",
		PublishAt:   timePtr(frozen.Add(-time.Hour)),
	})
	if err != nil {
		t.Fatalf("add unit: %v", err)
	}

	hidden := true
	updated, err := svc.UpdatePublishFlags(context.Background(), container.UpdatePublishFlagsRequest{
		UnitID:        unit.ID,
		HiddenFromTOC: &hidden,
		UpdatedBy:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("update flags: %v", err)
	}
	if !updated.HiddenFromTOC {
		t.Fatalf("expected hidden_from_toc to be set")
	}
	if updated.StaffOnly || updated.Gated {
		t.Fatalf("untouched flags must keep stored values, got %+v", updated)
	}

	view, err := svc.RenderContainer(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("render container: %v", err)
	}
	if view.Modules[0].Bar.Variant != domain.VariantBlack {
		t.Fatalf("expected hidden unit to render black, got %s", view.Modules[0].Bar.Variant)
	}
}

func TestServiceUpdatePublishFlagsUnknownUnit(t *testing.T) {
	svc, _, _ := newTestService(t)

	var notFound *container.NotFoundError
	_, err := svc.UpdatePublishFlags(context.Background(), container.UpdatePublishFlagsRequest{UnitID: uuid.New()})
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError got %v", err)
	}
}
