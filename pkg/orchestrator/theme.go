package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Well-known theme tokens that seed widget parameters before catalog
// presets and request overrides.
const (
	themeTokenColor      = "loading.color"
	themeTokenBackground = "loading.background"
)

// ThemeSelector resolves a theme selection by name and variant. The
// go-theme registry satisfies this interface.
type ThemeSelector interface {
	Select(name, variant string, options ...theme.QueryOption) (*theme.Selection, error)
}

// WithThemeSelector wires a selector consulted on every request. The
// request's ThemeName and ThemeVariant are passed through as-is.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider wires a selector together with the default theme and
// variant used when a request does not specify them.
func WithThemeProvider(provider ThemeSelector, name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeSelector = provider
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithThemeFallbacks replaces the partial fallbacks merged beneath every
// theme selection. Pass nil to disable the defaults.
func WithThemeFallbacks(partials map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = clonePartials(partials)
		o.themeFallbacksSet = true
	}
}

// defaultThemeFallbacks maps partial roles to the built in templates used
// when a theme manifest does not override them.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"page": "templates/page.tmpl",
	}
}

func (o *Orchestrator) themeConfig(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	name := req.ThemeName
	if name == "" {
		name = o.themeName
	}
	if name == "" {
		return nil, nil
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.themeVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}

	return o.rendererConfig(selection), nil
}

// rendererConfig flattens a selection into the renderer facing config:
// fallback partials under manifest templates under variant templates,
// variant tokens over base tokens, and css vars derived from the merged
// token set.
func (o *Orchestrator) rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: clonePartials(o.themeFallbacks),
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	manifest := selection.Manifest
	var variantData theme.Variant
	hasVariant := false
	if manifest != nil {
		for key, value := range manifest.Templates {
			cfg.Partials[key] = value
		}
		for key, value := range manifest.Tokens {
			cfg.Tokens[key] = value
		}
		if selection.Variant != "" && manifest.Variants != nil {
			variantData, hasVariant = manifest.Variants[selection.Variant]
		}
	}
	if hasVariant {
		for key, value := range variantData.Templates {
			cfg.Partials[key] = value
		}
		for key, value := range variantData.Tokens {
			cfg.Tokens[key] = value
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars[cssVarName(key)] = value
	}

	cfg.AssetURL = assetResolver(manifest, variantData, hasVariant)
	return cfg
}

func assetResolver(manifest *theme.Manifest, variantData theme.Variant, hasVariant bool) func(string) string {
	files := map[string]string{}
	prefix := ""
	if manifest != nil {
		prefix = manifest.Assets.Prefix
		for key, value := range manifest.Assets.Files {
			files[key] = value
		}
	}
	if hasVariant {
		if variantData.Assets.Prefix != "" {
			prefix = variantData.Assets.Prefix
		}
		for key, value := range variantData.Assets.Files {
			files[key] = value
		}
	}

	return func(key string) string {
		name, ok := files[key]
		if !ok || name == "" {
			return ""
		}
		return joinAssetPath(prefix, name)
	}
}

// cssVarName converts a token key into a CSS custom property name.
// Dotted tokens such as loading.color become --loading-color.
func cssVarName(key string) string {
	return "--" + strings.ReplaceAll(key, ".", "-")
}

// themeOverrides maps the well-known tokens onto widget parameters.
func themeOverrides(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return nil
	}
	out := map[string]any{}
	if value := strings.TrimSpace(cfg.Tokens[themeTokenColor]); value != "" {
		out["color"] = value
	}
	if value := strings.TrimSpace(cfg.Tokens[themeTokenBackground]); value != "" {
		out["background_color"] = value
	}
	return out
}

func joinAssetPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(name, "/")
}

func clonePartials(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
