package theme

import (
	"github.com/goliatone/go-studio/internal/domain"
)

// Tokens is the concrete set of visual attributes the render layer applies to
// a bar module. The accent drives the color-coded left border; the remaining
// values style the module body.
type Tokens struct {
	Accent     string
	Background string
	Border     string
	Text       string
}

// DefaultTokens returns the built-in palette for a variant. Theme manifests
// can override any value through variant token sets; these defaults keep the
// studio usable without a theme on disk.
func DefaultTokens(variant domain.Variant) Tokens {
	switch variant {
	case domain.VariantGreen:
		return Tokens{Accent: "#0d7d4d", Background: "#f2fcf5", Border: "#c3e6cb", Text: "#1d2125"}
	case domain.VariantBlue:
		return Tokens{Accent: "#00688d", Background: "#f2f8fb", Border: "#b8daff", Text: "#1d2125"}
	case domain.VariantYellow:
		return Tokens{Accent: "#ffd900", Background: "#fffbea", Border: "#ffeeba", Text: "#1d2125"}
	case domain.VariantRed:
		return Tokens{Accent: "#ab0d02", Background: "#fff2f1", Border: "#f5c6cb", Text: "#1d2125"}
	case domain.VariantBlack:
		return Tokens{Accent: "#000000", Background: "#f8f9fa", Border: "#d7dadd", Text: "#1d2125"}
	default:
		return Tokens{Accent: "#d7dadd", Background: "#ffffff", Border: "#e9ecef", Text: "#1d2125"}
	}
}

// tokenKeys are the manifest token names a theme variant may override.
const (
	tokenAccent     = "accent"
	tokenBackground = "background"
	tokenBorder     = "border"
	tokenText       = "text"
)

func (t Tokens) overlay(values map[string]string) Tokens {
	if len(values) == 0 {
		return t
	}
	if v, ok := values[tokenAccent]; ok && v != "" {
		t.Accent = v
	}
	if v, ok := values[tokenBackground]; ok && v != "" {
		t.Background = v
	}
	if v, ok := values[tokenBorder]; ok && v != "" {
		t.Border = v
	}
	if v, ok := values[tokenText]; ok && v != "" {
		t.Text = v
	}
	return t
}
