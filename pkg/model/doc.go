// Package model re-exports the widget model consumed by renderers and the
// variant catalog. The composition logic resides in internal/model; this
// package aliases its types so callers can construct overrides, author
// custom hooks, and consume bundles without importing internal paths. A
// widget render composes one parameter set (base defaults, variant
// defaults, overrides, then hooks in the fixed size, color,
// background_color order) and substitutes both templates from it, which
// keeps markup and stylesheet geometry in agreement.
package model
