// Package loading renders pure CSS loading animations. Each variant is a
// pair of placeholder templates (markup and stylesheet) composed with
// size and color parameters, scoped under a per-instance css class, and
// emitted through pluggable display renderers: an inline HTML fragment,
// a standalone page, or a notebook mime bundle.
package loading

import (
	"context"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/orchestrator"
	"github.com/goliatone/go-loading/pkg/render"
	"github.com/goliatone/go-loading/pkg/variants"
)

// Bundle is the dual-format render result: markup, stylesheet, and the
// instance class both were rendered with.
type Bundle = model.Bundle

// Params is the widget parameter set merged from defaults and overrides.
type Params = model.Params

// Definition describes an animation variant: placeholder templates plus
// defaults and derivation hooks.
type Definition = model.Definition

// Hooks holds the per-variant parameter derivation hooks.
type Hooks = model.Hooks

// Request describes a single render through the orchestrator.
type Request = orchestrator.Request

// RenderOptions describes per-request data passed to display renderers.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to reuse one pipeline across requests.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Render runs the full pipeline for a single request. It is the simplest
// entry point for callers that just want output bytes.
func Render(ctx context.Context, req Request, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, req)
}

// RenderHTML renders the named variant as an inline fragment using the
// default parameter set.
func RenderHTML(ctx context.Context, variant string, options ...orchestrator.Option) ([]byte, error) {
	return Render(ctx, Request{Variant: variant}, options...)
}

// Variants lists the built in animation names in sorted order.
func Variants() []string {
	return variants.NewDefaultRegistry().List()
}

// NewRegistry returns a registry preloaded with the built in variants so
// callers can add their own definitions next to them.
func NewRegistry() *variants.Registry {
	return variants.NewDefaultRegistry()
}

// WithThemeSelector passes a go-theme selector through to the
// orchestrator so theme/variant choices resolve ahead of rendering.
func WithThemeSelector(selector orchestrator.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider wires a go-theme provider together with the default
// theme and variant applied when a request does not name them.
func WithThemeProvider(provider orchestrator.ThemeSelector, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithThemeFallbacks forwards fallback partials used when deriving
// renderer configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
