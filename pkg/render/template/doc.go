// Package template defines the renderer-agnostic template seam used by
// page-style renderers and preview tooling. The interface mirrors the
// github.com/goliatone/go-template engine contract so callers can swap in
// their own engine.
package template
