package theme

import (
	"errors"
	"strings"

	"github.com/goliatone/go-studio/internal/domain"
	"github.com/goliatone/go-studio/internal/logging"
	"github.com/goliatone/go-studio/pkg/interfaces"
	"github.com/goliatone/go-studio/presentation"
)

// ReleaseInfo carries the release copy displayed inside a bar module.
type ReleaseInfo struct {
	Date string
	With string
}

// BarModule is the fully-resolved view model for one publishing status bar:
// the selected variant, its concrete tokens, the restriction labels, and the
// release line with its strikethrough modifier.
type BarModule struct {
	Variant              domain.Variant
	Tokens               Tokens
	Labels               []string
	ReleaseLine          string
	StrikethroughRelease bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// Renderer projects publish-state snapshots into bar modules. It owns the
// render-layer half of the contract: an incomplete snapshot degrades to the
// neutral variant with a logged warning instead of failing the render pass.
type Renderer struct {
	palette *Palette
	logger  interfaces.Logger
}

// NewRenderer constructs a renderer. Without options it uses built-in tokens
// and a no-op logger.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		palette: NewPalette(PaletteConfig{}, nil),
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithPalette injects the token palette used for variant styling.
func WithPalette(palette *Palette) RendererOption {
	return func(r *Renderer) {
		if palette != nil {
			r.palette = palette
		}
	}
}

// WithLogger injects the logger used for render anomalies. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) RendererOption {
	return func(r *Renderer) {
		if logger == nil {
			r.logger = logging.NoOp()
			return
		}
		r.logger = logger
	}
}

// BarModule resolves the snapshot and assembles its bar module. Incomplete
// snapshots render neutral; palette failures fall back to built-in tokens.
func (r *Renderer) BarModule(snapshot presentation.Snapshot, release ReleaseInfo) BarModule {
	resolved, err := presentation.ResolveSnapshot(snapshot)
	if err != nil {
		if errors.Is(err, presentation.ErrInvalidState) {
			r.logger.Warn("presentation.resolve.invalid_state", "error", err)
		} else {
			r.logger.Error("presentation.resolve.failed", "error", err)
		}
		resolved = presentation.Presentation{Variant: domain.VariantNeutral}
	}

	tokens, err := r.palette.Tokens(resolved.Variant)
	if err != nil {
		r.logger.Warn("theme.palette.fallback", "variant", resolved.Variant.String(), "error", err)
	}

	return BarModule{
		Variant:              resolved.Variant,
		Tokens:               tokens,
		Labels:               restrictionLabels(snapshot.WithDefaults()),
		ReleaseLine:          releaseLine(release),
		StrikethroughRelease: resolved.StrikethroughRelease,
	}
}

// restrictionLabels emits one label per true restriction facet. Both labels
// coexist when a unit is staff only and hidden from the TOC; the color merely
// collapses to the shared black variant.
func restrictionLabels(snapshot presentation.Snapshot) []string {
	var labels []string
	if snapshot.StaffOnly != nil && *snapshot.StaffOnly {
		labels = append(labels, "Staff only")
	}
	if snapshot.HiddenFromTOC != nil && *snapshot.HiddenFromTOC {
		labels = append(labels, "Hidden from table of contents")
	}
	if snapshot.Gated != nil && *snapshot.Gated {
		labels = append(labels, "Prerequisite required")
	}
	return labels
}

func releaseLine(release ReleaseInfo) string {
	date := strings.TrimSpace(release.Date)
	with := strings.TrimSpace(release.With)
	switch {
	case date == "" && with == "":
		return ""
	case with == "":
		return "Released: " + date
	case date == "":
		return "Released with " + with
	default:
		return "Released: " + date + " with " + with
	}
}
