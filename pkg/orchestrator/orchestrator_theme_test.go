package orchestrator

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/render"
)

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}

	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: manifest,
	}

	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
		WithCatalogFS(nil),
	)

	_, err := orch.Generate(context.Background(), Request{
		Variant:      "ring",
		Renderer:     renderer.Name(),
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "custom-variant" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	if renderer.options.Theme == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if renderer.options.Theme.Theme != selection.Theme {
		t.Fatalf("theme name mismatch: want %s, got %s", selection.Theme, renderer.options.Theme.Theme)
	}
	if renderer.options.Theme.Variant != selection.Variant {
		t.Fatalf("theme variant mismatch: want %s, got %s", selection.Variant, renderer.options.Theme.Variant)
	}
	if renderer.options.Theme.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := renderer.options.Theme.Partials["page"]; got != defaultThemeFallbacks()["page"] {
		t.Fatalf("partials not merged with fallbacks: want %s, got %s", defaultThemeFallbacks()["page"], got)
	}
	if renderer.options.Theme.Tokens["brand"] != manifest.Tokens["brand"] {
		t.Fatalf("tokens not propagated")
	}
	if renderer.options.Theme.CSSVars["--brand"] != manifest.Tokens["brand"] {
		t.Fatalf("css vars not derived from tokens")
	}
}

func TestOrchestrator_WithThemeProviderUsesDefaults(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":         "#123456",
			"loading.color": "#0ea5e9",
		},
		Templates: map[string]string{
			"page": "themes/acme/page.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"loading.stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"page.header": "themes/acme/dark/header.tmpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"loading.vendor": "vendor.dark.js",
					},
				},
			},
		},
	}

	provider := theme.NewRegistry()
	if err := provider.Register(manifest); err != nil {
		t.Fatalf("register manifest: %v", err)
	}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeProvider(theme.Selector{Registry: provider}, "acme", "dark"),
		WithCatalogFS(nil),
	)

	_, err := orch.Generate(context.Background(), Request{
		Variant:  "ring",
		Renderer: renderer.Name(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" {
		t.Fatalf("theme name mismatch: want acme, got %s", cfg.Theme)
	}
	if cfg.Variant != "dark" {
		t.Fatalf("theme variant mismatch: want dark, got %s", cfg.Variant)
	}
	if cfg.Partials["page"] != "themes/acme/page.tmpl" {
		t.Fatalf("expected base template override, got %s", cfg.Partials["page"])
	}
	if cfg.Partials["page.header"] != "themes/acme/dark/header.tmpl" {
		t.Fatalf("expected variant template override, got %s", cfg.Partials["page.header"])
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.CSSVars["--loading-color"] != "#0ea5e9" {
		t.Fatalf("dotted token not mapped to a css var, got %q", cfg.CSSVars["--loading-color"])
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("loading.vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("unexpected vendor asset url: %s", got)
	}
	if got := cfg.AssetURL("loading.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}

	if !strings.Contains(renderer.bundle.CSS, "#0ea5e9") {
		t.Fatalf("expected loading.color token to drive widget color, css:\n%s", renderer.bundle.CSS)
	}
}

func TestOrchestrator_ThemeTokenYieldsToRequestOverride(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"loading.color": "#0ea5e9",
		},
	}

	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeProvider(selector, "acme", ""),
		WithCatalogFS(nil),
	)

	_, err := orch.Generate(context.Background(), Request{
		Variant: "ring",
		Overrides: map[string]any{
			"color": "#b91c1c",
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if strings.Contains(renderer.bundle.CSS, "#0ea5e9") {
		t.Fatalf("theme token should lose to the request override, css:\n%s", renderer.bundle.CSS)
	}
	if !strings.Contains(renderer.bundle.CSS, "#b91c1c") {
		t.Fatalf("request override missing from css:\n%s", renderer.bundle.CSS)
	}
}

func TestOrchestrator_SkipsThemeWithoutName(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme"}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
		WithCatalogFS(nil),
	)

	_, err := orch.Generate(context.Background(), Request{Variant: "ring"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 0 {
		t.Fatalf("selector should not run without a theme name, got %d calls", len(selector.calls))
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected nil theme config, got %+v", renderer.options.Theme)
	}
}

func TestOrchestrator_ThemeSelectionErrorSurfaces(t *testing.T) {
	selector := &stubThemeSelector{err: context.DeadlineExceeded}

	orch := New(
		WithThemeProvider(selector, "acme", ""),
		WithCatalogFS(nil),
	)

	_, err := orch.Generate(context.Background(), Request{Variant: "ring"})
	if err == nil {
		t.Fatalf("expected selection error")
	}
	if !strings.Contains(err.Error(), "select theme") {
		t.Fatalf("unexpected error: %v", err)
	}
}

type captureRenderer struct {
	bundle  model.Bundle
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, bundle model.Bundle, opts render.RenderOptions) ([]byte, error) {
	r.bundle = bundle
	r.options = opts
	return []byte(bundle.HTML), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
