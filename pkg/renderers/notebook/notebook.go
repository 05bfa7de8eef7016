// Package notebook renders a widget bundle as a Jupyter style mime bundle
// so rich frontends can pick the best representation they support.
package notebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/render"
)

const (
	mimeHTML  = "text/html"
	mimeCSS   = "text/css"
	mimePlain = "text/plain"
)

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the notebook renderer.
func New() (*Renderer, error) {
	return &Renderer{}, nil
}

func (r *Renderer) Name() string {
	return "notebook"
}

// ContentType returns the MIME type of the bundle envelope itself.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render emits a {mime type: payload} object. The html entry carries a
// self contained fragment, the css entry the bare stylesheet, and the
// plain entry a text fallback. Keys marshal in sorted order so repeated
// renders are byte identical.
func (r *Renderer) Render(_ context.Context, bundle model.Bundle, options render.RenderOptions) ([]byte, error) {
	if strings.TrimSpace(bundle.HTML) == "" {
		return nil, fmt.Errorf("notebook renderer: bundle has no markup")
	}

	var fragment strings.Builder
	if strings.TrimSpace(bundle.CSS) != "" {
		fragment.WriteString("<style>\n")
		fragment.WriteString(strings.TrimRight(bundle.CSS, "\n"))
		fragment.WriteString("\n</style>\n")
	}
	fragment.WriteString(strings.TrimRight(bundle.HTML, "\n"))
	fragment.WriteString("\n")

	payload := map[string]string{
		mimeHTML:  fragment.String(),
		mimePlain: plainFallback(bundle, options),
	}
	if strings.TrimSpace(bundle.CSS) != "" {
		payload[mimeCSS] = bundle.CSS
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return nil, fmt.Errorf("notebook renderer: marshal mime bundle: %w", err)
	}
	return buf.Bytes(), nil
}

func plainFallback(bundle model.Bundle, options render.RenderOptions) string {
	label := strings.TrimSpace(options.Label)
	if label == "" {
		label = "Loading widget"
	}
	if bundle.Class == "" {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, bundle.Class)
}
