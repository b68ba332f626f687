package library

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	slugpkg "github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-studio/internal/identity"
	"github.com/goliatone/go-studio/internal/logging"
	"github.com/goliatone/go-studio/pkg/interfaces"
	"github.com/goliatone/go-studio/presentation"
)

var ErrUnitNotFound = errors.New("library: unit not found")

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPattern overrides the filename pattern matched during discovery.
// Defaults to "*.md".
func WithPattern(pattern string) LoaderOption {
	return func(l *Loader) {
		if strings.TrimSpace(pattern) != "" {
			l.pattern = pattern
		}
	}
}

// WithLogger injects the loader logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) LoaderOption {
	return func(l *Loader) {
		if logger == nil {
			l.logger = logging.NoOp()
			return
		}
		l.logger = logger
	}
}

// Loader reads library units from markdown files. Frontmatter carries the
// publish facets; the body renders to the preview HTML shown in the picker.
type Loader struct {
	fsys     fs.FS
	pattern  string
	markdown goldmark.Markdown
	logger   interfaces.Logger
}

// NewLoader constructs a loader over the supplied filesystem root.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:    fsys,
		pattern: "*.md",
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// List discovers every library unit under the root, sorted by title.
func (l *Loader) List(ctx context.Context) ([]*Unit, error) {
	var units []*Unit
	err := fs.WalkDir(l.fsys, ".", func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		matched, err := path.Match(l.pattern, entry.Name())
		if err != nil {
			return err
		}
		if !matched {
			return nil
		}

		unit, err := l.loadFile(filePath)
		if err != nil {
			return err
		}
		units = append(units, unit)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Title < units[j].Title
	})
	l.logger.Debug("library.list", "units", len(units))
	return units, nil
}

// Find returns the unit with the given slug.
func (l *Loader) Find(ctx context.Context, slug string) (*Unit, error) {
	slug = strings.TrimSpace(slug)
	units, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, unit := range units {
		if unit.Slug == slug {
			return unit, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnitNotFound, slug)
}

func (l *Loader) loadFile(filePath string) (*Unit, error) {
	source, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("read library unit %s: %w", filePath, err)
	}

	var meta unitFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter in %s: %w", filePath, err)
	}

	unitSlug := strings.TrimSpace(meta.Slug)
	if unitSlug == "" {
		base := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		normalized, err := slugpkg.Normalize(base)
		if err != nil {
			return nil, fmt.Errorf("derive slug for %s: %w", filePath, err)
		}
		unitSlug = normalized
	}

	var preview bytes.Buffer
	if err := l.markdown.Convert(body, &preview); err != nil {
		return nil, fmt.Errorf("render preview for %s: %w", filePath, err)
	}

	unit := &Unit{
		ID:                    identity.LibraryUnitUUID(unitSlug),
		Slug:                  unitSlug,
		Title:                 strings.TrimSpace(meta.Title),
		Tags:                  meta.Tags,
		Snapshot:              meta.snapshot(),
		HasUnpublishedChanges: meta.UnpublishedChanges,
		ReleaseWith:           strings.TrimSpace(meta.ReleaseWith),
		PreviewHTML:           preview.Bytes(),
		SourcePath:            filePath,
	}
	if unit.Title == "" {
		unit.Title = unit.Slug
	}
	if !meta.ReleaseDate.IsZero() {
		release := meta.ReleaseDate
		unit.ReleaseDate = &release
	}
	return unit, nil
}

type unitFrontMatter struct {
	Title              string    `yaml:"title"`
	Slug               string    `yaml:"slug"`
	Tags               []string  `yaml:"tags"`
	Ready              bool      `yaml:"ready"`
	Live               bool      `yaml:"live"`
	Warnings           bool      `yaml:"warnings"`
	Errors             bool      `yaml:"errors"`
	StaffOnly          bool      `yaml:"staff_only"`
	HiddenFromTOC      bool      `yaml:"hidden_from_toc"`
	Gated              bool      `yaml:"gated"`
	Scheduled          bool      `yaml:"scheduled"`
	UnpublishedChanges bool      `yaml:"unpublished_changes"`
	ReleaseDate        time.Time `yaml:"release_date"`
	ReleaseWith        string    `yaml:"release_with"`
}

// snapshot materializes the authored facets. Library files are authored by
// hand, so absent keys intentionally default to false rather than failing.
func (m unitFrontMatter) snapshot() presentation.Snapshot {
	ptr := func(v bool) *bool { return &v }
	return presentation.Snapshot{
		Ready:         ptr(m.Ready),
		Live:          ptr(m.Live),
		Warnings:      ptr(m.Warnings),
		Errors:        ptr(m.Errors),
		StaffOnly:     ptr(m.StaffOnly),
		HiddenFromTOC: ptr(m.HiddenFromTOC),
		Gated:         ptr(m.Gated),
		Scheduled:     ptr(m.Scheduled),
	}
}
