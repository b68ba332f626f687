package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	studio "github.com/goliatone/go-studio"
	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/domain"
)

func main() {
	var (
		dsn        = flag.String("dsn", "file:studio_preview?mode=memory&cache=shared&_fk=1", "SQLite DSN backing the preview containers")
		themePath  = flag.String("theme-path", "", "Path to a theme manifest directory overriding the built-in palette")
		themeName  = flag.String("theme-name", "", "Theme name to select from the manifest")
		libraryDir = flag.String("library-dir", "", "Optional markdown library directory to list alongside the container")
		logLevel   = flag.String("log-level", "info", "Log level for the studio runtime")
	)

	flag.Parse()

	cfg := studio.DefaultConfig()
	cfg.Storage.Provider = "sqlite"
	cfg.Storage.DSN = *dsn
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = "console"

	if *themePath != "" {
		cfg.Features.Themes = true
		cfg.Theme.Path = *themePath
		cfg.Theme.Name = *themeName
	}
	if *libraryDir != "" {
		cfg.Features.Library = true
		cfg.Library.Enabled = true
		cfg.Library.ContentDir = *libraryDir
	}

	module, err := studio.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap studio module: %v", err)
	}
	defer module.Close()

	ctx := context.Background()
	if err := module.InitSchema(ctx); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	view, err := seedDemoContainer(ctx, module.Containers())
	if err != nil {
		log.Fatalf("seed demo container: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Container: %s (%s)\n\n", view.Container.Title, view.Container.Slug)
	for _, moduleView := range view.Modules {
		printModule(moduleView)
	}

	summary := view.Summary
	fmt.Fprintf(os.Stdout, "Summary: live=%d ready=%d warnings=%d errors=%d restricted=%d neutral=%d\n",
		summary.Live, summary.Ready, summary.Warnings, summary.Errors, summary.Restricted, summary.Neutral)

	if loader := module.Library(); loader != nil {
		units, err := loader.List(ctx)
		if err != nil {
			log.Fatalf("list library: %v", err)
		}
		fmt.Fprintf(os.Stdout, "\nLibrary (%d units):\n", len(units))
		for _, unit := range units {
			fmt.Fprintf(os.Stdout, "  %-24s %s\n", unit.Slug, unit.Title)
		}
	}
}

func printModule(view container.ModuleView) {
	bar := view.Bar
	fmt.Fprintf(os.Stdout, "[%s] %-22s accent=%s", bar.Variant, view.Unit.Title, bar.Tokens.Accent)
	if len(bar.Labels) > 0 {
		fmt.Fprintf(os.Stdout, "  %s", strings.Join(bar.Labels, " · "))
	}
	if bar.ReleaseLine != "" {
		if bar.StrikethroughRelease {
			fmt.Fprintf(os.Stdout, "  ~~%s~~", bar.ReleaseLine)
		} else {
			fmt.Fprintf(os.Stdout, "  %s", bar.ReleaseLine)
		}
	}
	fmt.Fprintln(os.Stdout)
}

func seedDemoContainer(ctx context.Context, svc container.Service) (*container.View, error) {
	created, err := svc.CreateContainer(ctx, container.CreateContainerRequest{
		Slug:  "demo-outline",
		Title: "Demo outline",
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	published := now.Add(-24 * time.Hour)
	future := now.Add(14 * 24 * time.Hour)
	releaseWith := "Cohort A"

	seeds := []container.AddUnitRequest{
		{Title: "Published lesson", Status: string(domain.StatusLive), PublishAt: &published},
		{Title: "Staged lesson", Status: string(domain.StatusReady)},
		{Title: "Lesson with warnings", Status: string(domain.StatusReady), WarningCount: 2},
		{Title: "Broken lesson", Status: string(domain.StatusReady), ErrorCount: 1},
		{Title: "Staff notes", Status: string(domain.StatusReady), StaffOnly: true, PublishAt: &future, ReleaseDate: &future, ReleaseWith: &releaseWith},
		{Title: "Untouched draft", Status: string(domain.StatusDraft)},
	}
	for _, seed := range seeds {
		seed.ContainerID = created.ID
		if _, err := svc.AddUnit(ctx, seed); err != nil {
			return nil, err
		}
	}

	return svc.RenderContainer(ctx, created.ID)
}
