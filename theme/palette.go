package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-studio/internal/domain"
)

// ManifestLoader resolves a theme manifest from a filesystem path.
type ManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsManifestLoader struct{}

func (fsManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}

	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

// PaletteConfig selects the theme manifest that supplies variant token overrides.
type PaletteConfig struct {
	Path string
	Name string
}

// Palette resolves the token set for each presentation variant. Variant names
// double as the theme variant keys, so a manifest can restyle the red accent
// without touching the resolver.
type Palette struct {
	registry *gotheme.MemoryRegistry
	loader   ManifestLoader
	name     string
	path     string

	mu     sync.Mutex
	loaded bool
}

// NewPalette constructs a palette backed by the manifest at cfg.Path. A nil
// loader falls back to the filesystem loader. A zero config yields a palette
// that always answers with the built-in defaults.
func NewPalette(cfg PaletteConfig, loader ManifestLoader) *Palette {
	if loader == nil {
		loader = fsManifestLoader{}
	}
	return &Palette{
		registry: gotheme.NewRegistry(),
		loader:   loader,
		name:     strings.TrimSpace(cfg.Name),
		path:     strings.TrimSpace(cfg.Path),
	}
}

// Tokens returns the token set for the variant, starting from the built-in
// defaults and overlaying any values the selected theme variant declares.
func (p *Palette) Tokens(variant domain.Variant) (Tokens, error) {
	defaults := DefaultTokens(variant)
	if p == nil || p.path == "" {
		return defaults, nil
	}

	if err := p.ensureManifest(); err != nil {
		return defaults, err
	}

	selector := gotheme.Selector{
		Registry:     p.registry,
		DefaultTheme: p.name,
	}
	selection, err := selector.Select(p.name, variant.String())
	if err != nil {
		return defaults, fmt.Errorf("select theme variant %s: %w", variant, err)
	}

	return defaults.overlay(selection.Tokens()), nil
}

func (p *Palette) ensureManifest() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return nil
	}

	manifest, err := p.loader.Load(p.path)
	if err != nil {
		return fmt.Errorf("load theme manifest from %s: %w", p.path, err)
	}

	normalized := *manifest
	if strings.TrimSpace(normalized.Name) == "" {
		normalized.Name = p.name
	}
	if normalized.Name == "" {
		return fmt.Errorf("theme name required for manifest registration")
	}
	if p.name == "" {
		p.name = normalized.Name
	}

	if err := p.registry.Register(&normalized); err != nil {
		return fmt.Errorf("register theme manifest: %w", err)
	}
	p.loaded = true
	return nil
}
