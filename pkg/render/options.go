package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data renderers can use to customise
// their output without reaching back into the composition pipeline.
type RenderOptions struct {
	// Title feeds the document title of page-style output. Empty falls
	// back to the renderer's default.
	Title string
	// Label and Description carry catalog metadata for the chrome around
	// the widget: page captions, notebook plain-text fallbacks.
	Label       string
	Description string
	// Theme is the selected theme configuration. Renderers derive CSS
	// variables and asset URLs from it; nil means unthemed output.
	Theme *theme.RendererConfig
}
