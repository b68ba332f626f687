package library_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-studio/domain"
	"github.com/goliatone/go-studio/library"
	"github.com/goliatone/go-studio/presentation"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"welcome.md": &fstest.MapFile{Data: []byte(`---
title: Welcome
slug: welcome
live: true
tags:
  - onboarding
---
# Welcome

Say hello.
`)},
		"drafts/staff-brief.md": &fstest.MapFile{Data: []byte(`---
title: Staff brief
staff_only: true
scheduled: true
unpublished_changes: true
release_with: "Week 1"
---
Internal notes.
`)},
		"notes.txt": &fstest.MapFile{Data: []byte("not markdown")},
	}
}

func TestLoaderList(t *testing.T) {
	loader := library.NewLoader(fixtureFS())

	units, err := loader.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 units got %d", len(units))
	}
	if units[0].Title != "Staff brief" || units[1].Title != "Welcome" {
		t.Fatalf("expected title ordering, got %q then %q", units[0].Title, units[1].Title)
	}
}

func TestLoaderFrontmatterFacets(t *testing.T) {
	loader := library.NewLoader(fixtureFS())

	unit, err := loader.Find(context.Background(), "staff-brief")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !unit.HasUnpublishedChanges {
		t.Fatalf("expected unpublished changes flag")
	}
	if unit.ReleaseWith != "Week 1" {
		t.Fatalf("unexpected release_with %q", unit.ReleaseWith)
	}

	resolved, err := presentation.ResolveSnapshot(unit.Snapshot)
	if err != nil {
		t.Fatalf("resolve snapshot: %v", err)
	}
	if resolved.Variant != domain.VariantBlack {
		t.Fatalf("expected black variant got %s", resolved.Variant)
	}
	if !resolved.StrikethroughRelease {
		t.Fatalf("expected struck release for scheduled staff-only unit")
	}
}

func TestLoaderSlugDerivedFromFilename(t *testing.T) {
	loader := library.NewLoader(fixtureFS())

	unit, err := loader.Find(context.Background(), "staff-brief")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if unit.SourcePath != "drafts/staff-brief.md" {
		t.Fatalf("unexpected source path %q", unit.SourcePath)
	}
}

func TestLoaderDeterministicIDs(t *testing.T) {
	loader := library.NewLoader(fixtureFS())

	first, err := loader.Find(context.Background(), "welcome")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	second, err := library.NewLoader(fixtureFS()).Find(context.Background(), "welcome")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected deterministic IDs, got %s and %s", first.ID, second.ID)
	}
}

func TestLoaderPreviewHTML(t *testing.T) {
	loader := library.NewLoader(fixtureFS())

	unit, err := loader.Find(context.Background(), "welcome")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !strings.Contains(string(unit.PreviewHTML), "<h1") {
		t.Fatalf("expected rendered heading in preview, got %q", unit.PreviewHTML)
	}
}

func TestLoaderFindUnknownSlug(t *testing.T) {
	loader := library.NewLoader(fixtureFS())

	if _, err := loader.Find(context.Background(), "missing"); !errors.Is(err, library.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound got %v", err)
	}
}
