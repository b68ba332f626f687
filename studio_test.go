package studio_test

import (
	"context"
	"testing"
	"testing/fstest"

	studio "github.com/goliatone/go-studio"
	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/domain"
)

func TestModuleRendersContainerView(t *testing.T) {
	module, err := studio.New(studio.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer module.Close()

	ctx := context.Background()
	svc := module.Containers()

	created, err := svc.CreateContainer(ctx, container.CreateContainerRequest{
		Slug:  "intro-to-go",
		Title: "Intro to Go",
	})
	if err != nil {
		t.Fatalf("create container: %v", err)
	}

	if _, err := svc.AddUnit(ctx, container.AddUnitRequest{
		ContainerID: created.ID,
		Title:       "Getting started",
		Status:      string(domain.StatusReady),
	}); err != nil {
		t.Fatalf("add unit: %v", err)
	}
	if _, err := svc.AddUnit(ctx, container.AddUnitRequest{
		ContainerID: created.ID,
		Title:       "Instructor notes",
		Status:      string(domain.StatusDraft),
		StaffOnly:   true,
	}); err != nil {
		t.Fatalf("add unit: %v", err)
	}

	view, err := svc.RenderContainer(ctx, created.ID)
	if err != nil {
		t.Fatalf("render container: %v", err)
	}
	if len(view.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(view.Modules))
	}
	if view.Summary.Ready != 1 || view.Summary.Restricted != 1 {
		t.Fatalf("unexpected summary %+v", view.Summary)
	}
	if view.Modules[0].Bar.Variant != domain.VariantGreen {
		t.Fatalf("expected green first module, got %s", view.Modules[0].Bar.Variant)
	}
	if view.Modules[1].Bar.Variant != domain.VariantBlack {
		t.Fatalf("expected black second module, got %s", view.Modules[1].Bar.Variant)
	}
}

func TestModuleValidatesConfig(t *testing.T) {
	cfg := studio.DefaultConfig()
	cfg.Theme.Path = "themes/studio"

	if _, err := studio.New(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestModuleLibraryDisabledByDefault(t *testing.T) {
	module, err := studio.New(studio.DefaultConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer module.Close()

	if module.Library() != nil {
		t.Fatal("expected nil library loader when disabled")
	}
}

func TestModuleLibraryFromFS(t *testing.T) {
	cfg := studio.DefaultConfig()
	cfg.Features.Library = true
	cfg.Library.Enabled = true

	fsys := fstest.MapFS{
		"welcome.md": &fstest.MapFile{Data: []byte(`---
title: Welcome
live: true
---
# Welcome
`)},
	}

	module, err := studio.New(cfg, studio.WithLibraryFS(fsys))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer module.Close()

	loader := module.Library()
	if loader == nil {
		t.Fatal("expected library loader")
	}
	units, err := loader.List(context.Background())
	if err != nil {
		t.Fatalf("list library: %v", err)
	}
	if len(units) != 1 || units[0].Slug != "welcome" {
		t.Fatalf("unexpected library units %+v", units)
	}
}
