// Package page renders a widget bundle as a standalone HTML document with
// the stylesheet in the head and the classed markup in the body.
package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/render"
	rendertemplate "github.com/goliatone/go-loading/pkg/render/template"
	gotemplate "github.com/goliatone/go-loading/pkg/render/template/gotemplate"
)

const (
	templateName = "templates/page.tmpl"

	// Theme asset key a theme manifest can map to an external stylesheet.
	themeAssetStylesheet = "loading.stylesheet"

	// Theme partial role that swaps the document layout template.
	themePartialPage = "page"

	defaultTitle = "Loading"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	assetURLPrefix   string
}

type rendererTheme struct {
	Name         string            `json:"name"`
	Variant      string            `json:"variant"`
	Partials     map[string]string `json:"partials,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet links an external stylesheet from the document head in
// addition to the inlined widget styles.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithAssetURLPrefix prefixes relative asset paths (e.g. "/static/loading").
func WithAssetURLPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetURLPrefix = prefix
	}
}

// Renderer turns a widget bundle into a complete HTML document.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	stylesheet     string
	assetURLPrefix string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if err := ensureTemplate(cfg.templateFS, templateName); err != nil {
		return nil, err
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}

	return &Renderer{
		templates:      templateRenderer,
		stylesheet:     cfg.stylesheet,
		assetURLPrefix: cfg.assetURLPrefix,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "page"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces a full document ready for delivery.
func (r *Renderer) Render(_ context.Context, bundle model.Bundle, renderOptions render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}
	if strings.TrimSpace(bundle.HTML) == "" {
		return nil, fmt.Errorf("page renderer: bundle has no markup")
	}

	title := strings.TrimSpace(renderOptions.Title)
	if title == "" {
		title = defaultTitle
	}

	themeCtx := buildThemeContext(renderOptions.Theme)
	data := map[string]any{
		"title":       title,
		"label":       renderOptions.Label,
		"description": renderOptions.Description,
		"stylesheet":  r.stylesheetURL(themeAssetResolver(renderOptions.Theme)),
		"widget": map[string]any{
			"html":  strings.TrimRight(bundle.HTML, "\n"),
			"css":   strings.TrimRight(bundle.CSS, "\n"),
			"class": bundle.Class,
		},
		"theme": themeCtx,
	}

	rendered, err := r.templates.RenderTemplate(r.layoutTemplate(themeCtx), data)
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}

	return []byte(rendered), nil
}

// layoutTemplate lets a theme swap the document shell via the "page"
// partial role.
func (r *Renderer) layoutTemplate(themeCtx rendererTheme) string {
	if override := strings.TrimSpace(themeCtx.Partials[themePartialPage]); override != "" {
		return override
	}
	return templateName
}

func (r *Renderer) stylesheetURL(resolver func(string) string) string {
	href := r.stylesheet
	if resolver != nil {
		if resolved := resolver(themeAssetStylesheet); strings.TrimSpace(resolved) != "" {
			href = resolved
		}
	}
	return expandAssetURL(r.assetURLPrefix, href)
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	ctx := rendererTheme{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: copyStringMap(cfg.Partials),
		Tokens:   copyStringMap(cfg.Tokens),
		CSSVars:  copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	return ctx
}

func themeAssetResolver(cfg *theme.RendererConfig) func(string) string {
	if cfg == nil {
		return nil
	}
	return cfg.AssetURL
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func ensureTemplate(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("page renderer: template file system is nil")
	}
	if name == "" {
		return fmt.Errorf("page renderer: template name required")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("page renderer: template %q not found: %w", name, err)
	}
	return nil
}

func expandAssetURL(prefix, name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://") ||
		strings.HasPrefix(name, "//") ||
		strings.HasPrefix(name, "/") {
		return name
	}
	if prefix == "" {
		return name
	}
	p := strings.TrimRight(prefix, "/")
	n := strings.TrimLeft(name, "/")
	if p == "" {
		return n
	}
	return p + "/" + n
}
