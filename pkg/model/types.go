package model

import internalmodel "github.com/goliatone/go-loading/internal/model"

// Params re-exports the internal parameter set.
type Params = internalmodel.Params

// Hook re-exports the derivation hook contract.
type Hook = internalmodel.Hook

// Hooks re-exports the per-variant hook table.
type Hooks = internalmodel.Hooks

// Definition re-exports the variant definition.
type Definition = internalmodel.Definition

// Bundle re-exports the dual-format display representation.
type Bundle = internalmodel.Bundle

// Base parameter defaults.
const (
	DefaultSize       = internalmodel.DefaultSize
	DefaultColor      = internalmodel.DefaultColor
	DefaultBackground = internalmodel.DefaultBackground
)

// Defaults returns the base parameter set shared by every variant.
func Defaults() Params {
	return internalmodel.Defaults()
}

// Number coerces any numeric kind to float64.
func Number(v any) (float64, error) {
	return internalmodel.Number(v)
}

// Compose builds the full substitution set for a definition.
func Compose(def Definition, overrides Params) (Params, error) {
	return internalmodel.Compose(def, overrides)
}

// Render composes once and renders both templates from the same set.
func Render(def Definition, overrides Params) (Bundle, error) {
	return internalmodel.Render(def, overrides)
}
