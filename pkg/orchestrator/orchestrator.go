package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-loading/pkg/catalog"
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/render"
	"github.com/goliatone/go-loading/pkg/renderers/fragment"
	"github.com/goliatone/go-loading/pkg/renderers/notebook"
	"github.com/goliatone/go-loading/pkg/renderers/page"
	"github.com/goliatone/go-loading/pkg/variants"
)

const defaultRendererName = "fragment"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithVariants injects a variant registry.
func WithVariants(registry *variants.Registry) Option {
	return func(o *Orchestrator) {
		o.variants = registry
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithClassFactory overrides how instance css classes are generated for
// requests that do not pin one.
func WithClassFactory(factory func(variant string) string) Option {
	return func(o *Orchestrator) {
		if factory != nil {
			o.classFactory = factory
		}
	}
}

// WithCatalogFS supplies an fs.FS holding catalog documents. Pass nil to
// disable the embedded defaults.
func WithCatalogFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.catalogFS = fsys
		o.catalogSpecified = true
	}
}

// Orchestrator coordinates the full pipeline from variant lookup to
// rendered output. It applies sensible defaults (built in variants, the
// fragment renderer, the embedded catalog) while remaining open to
// dependency injection for advanced callers.
type Orchestrator struct {
	variants          *variants.Registry
	registry          *render.Registry
	defaultRenderer   string
	classFactory      func(variant string) string
	catalogFS         fs.FS
	catalogSpecified  bool
	catalog           *catalog.Store
	themeSelector     ThemeSelector
	themeName         string
	themeVariant      string
	themeFallbacks    map[string]string
	themeFallbacksSet bool
	initialiseErr     error
	defaultsApplied   bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so
// callers can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a loading widget.
type Request struct {
	// Variant selects which registered widget definition to render.
	Variant string

	// Overrides are caller supplied parameter values merged over the
	// catalog presets and the variant defaults.
	Overrides map[string]any

	// Class pins the instance css class. When empty the orchestrator
	// generates one through its class factory.
	Class string

	// Renderer names the display renderer to use. If empty, the
	// orchestrator falls back to the configured default renderer.
	Renderer string

	// Title, Label, and Description feed the renderer options for
	// displays that surface them (page title, notebook text fallback).
	Title       string
	Label       string
	Description string

	// ThemeName and ThemeVariant override the configured theme defaults
	// for this request.
	ThemeName    string
	ThemeVariant string
}

// Generate executes the variant lookup → compose → render sequence and
// returns the rendered bytes (an HTML fragment for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	bundle, themeCfg, err := o.renderBundle(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, bundle, render.RenderOptions{
		Title:       req.Title,
		Label:       req.Label,
		Description: req.Description,
		Theme:       themeCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

// RenderBundle exposes the composed dual-format bundle without passing it
// through a display renderer.
func (o *Orchestrator) RenderBundle(ctx context.Context, req Request) (model.Bundle, error) {
	bundle, _, err := o.renderBundle(ctx, req)
	return bundle, err
}

// Catalog returns the loaded metadata store. It is nil when catalog
// loading was disabled.
func (o *Orchestrator) Catalog() *catalog.Store {
	return o.catalog
}

// Variants returns the variant registry in use.
func (o *Orchestrator) Variants() *variants.Registry {
	return o.variants
}

// Renderers returns the display renderer registry in use.
func (o *Orchestrator) Renderers() *render.Registry {
	return o.registry
}

func (o *Orchestrator) renderBundle(ctx context.Context, req Request) (model.Bundle, *theme.RendererConfig, error) {
	if ctx == nil {
		return model.Bundle{}, nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Bundle{}, nil, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Bundle{}, nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return model.Bundle{}, nil, err
		}
	}

	if strings.TrimSpace(req.Variant) == "" {
		return model.Bundle{}, nil, errors.New("orchestrator: variant is required")
	}
	if o.variants == nil {
		return model.Bundle{}, nil, errors.New("orchestrator: variant registry is nil")
	}

	def, err := o.variants.Get(req.Variant)
	if err != nil {
		return model.Bundle{}, nil, fmt.Errorf("orchestrator: variant %q: %w", req.Variant, err)
	}

	themeCfg, err := o.themeConfig(req)
	if err != nil {
		return model.Bundle{}, nil, err
	}

	bundle, err := model.Render(def, o.composeOverrides(themeCfg, def, req))
	if err != nil {
		return model.Bundle{}, nil, fmt.Errorf("orchestrator: render bundle: %w", err)
	}

	return bundle, themeCfg, nil
}

// composeOverrides layers the parameter sources beneath the caller
// overrides: theme tokens, then catalog presets, then the request. The
// instance class lands last so every template sees the same value.
func (o *Orchestrator) composeOverrides(themeCfg *theme.RendererConfig, def model.Definition, req Request) map[string]any {
	merged := map[string]any{}
	for key, value := range themeOverrides(themeCfg) {
		merged[key] = value
	}
	if o.catalog != nil {
		if entry, ok := o.catalog.Entry(def.Name); ok {
			for key, value := range entry.Params {
				merged[key] = value
			}
		}
	}
	for key, value := range req.Overrides {
		merged[key] = value
	}

	class := strings.TrimSpace(req.Class)
	if class == "" {
		if fromOverrides, ok := merged["css_class"].(string); ok {
			class = strings.TrimSpace(fromOverrides)
		}
	}
	if class == "" {
		class = o.classFactory(def.Name)
	}
	merged["css_class"] = class

	return merged
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.variants == nil {
		o.variants = variants.NewDefaultRegistry()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registerDefaultRenderers()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.classFactory == nil {
		o.classFactory = defaultClassFactory
	}
	if !o.themeFallbacksSet && o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}

	o.ensureCatalog()

	o.defaultsApplied = true
}

func (o *Orchestrator) registerDefaultRenderers() {
	fragmentRenderer, err := fragment.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		return
	}
	o.registry.MustRegister(fragmentRenderer)

	pageRenderer, err := page.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: page renderer: %w", err)
		return
	}
	o.registry.MustRegister(pageRenderer)

	notebookRenderer, err := notebook.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: notebook renderer: %w", err)
		return
	}
	o.registry.MustRegister(notebookRenderer)
}

func (o *Orchestrator) ensureCatalog() {
	if o.catalog != nil {
		return
	}

	if !o.catalogSpecified && o.catalogFS == nil {
		o.catalogFS = catalog.EmbeddedFS()
	}
	if o.catalogFS == nil {
		return
	}

	store, err := catalog.LoadFS(o.catalogFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load catalog: %w", err)
		return
	}
	if store.Empty() {
		return
	}

	o.catalog = store
}

func defaultClassFactory(string) string {
	return "ld-" + uuid.NewString()
}
