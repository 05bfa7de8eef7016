// Package fragment renders a widget bundle as an inline HTML fragment:
// the stylesheet in a <style> block followed by the classed markup. It is
// the default display renderer.
package fragment

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/render"
)

type Option func(*config)

type config struct {
	includeStyles bool
}

// WithoutStyles omits the inline <style> block so callers that collect
// stylesheets separately can render the markup alone.
func WithoutStyles() Option {
	return func(cfg *config) {
		cfg.includeStyles = false
	}
}

type Renderer struct {
	includeStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the fragment renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{includeStyles: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return &Renderer{includeStyles: cfg.includeStyles}, nil
}

func (r *Renderer) Name() string {
	return "fragment"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the widget markup with its stylesheet inlined so the
// fragment can be dropped into any existing document.
func (r *Renderer) Render(_ context.Context, bundle model.Bundle, _ render.RenderOptions) ([]byte, error) {
	if strings.TrimSpace(bundle.HTML) == "" {
		return nil, fmt.Errorf("fragment renderer: bundle has no markup")
	}

	var b strings.Builder
	if r.includeStyles && strings.TrimSpace(bundle.CSS) != "" {
		b.WriteString("<style>\n")
		b.WriteString(strings.TrimRight(bundle.CSS, "\n"))
		b.WriteString("\n</style>\n")
	}
	b.WriteString(strings.TrimRight(bundle.HTML, "\n"))
	b.WriteString("\n")

	return []byte(b.String()), nil
}
