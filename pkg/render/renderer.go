// Package render defines the display renderer contract shared by the
// fragment, page, and notebook renderers, plus the registry the
// orchestrator resolves them from.
package render

import (
	"context"

	"github.com/goliatone/go-loading/pkg/model"
)

// Renderer converts a widget bundle into a byte representation (an inline
// HTML fragment, a standalone page, a notebook mime bundle).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, bundle model.Bundle, options RenderOptions) ([]byte, error)
}
