// Package orchestrator wires the variant registry, catalog metadata, theme
// selection, and display renderers into a single pipeline, providing
// dependency injection friendly helpers for consumers that prefer one
// entry point.
package orchestrator
