// Package model defines the parameter set, hook contract, and widget
// definition shared by the variant catalog and the display renderers.
package model

import (
	"github.com/goliatone/go-loading/pkg/template"
)

// Base parameter defaults applied before variant defaults and caller
// overrides.
const (
	DefaultSize       = 40
	DefaultColor      = "#2196f3"
	DefaultBackground = "transparent"
)

// Params is the substitution parameter set for a widget. Values are
// scalars (numbers and strings); they are stringified deterministically
// before substitution.
type Params map[string]any

// Hook derives extra parameters from the composed set. Hooks run after
// defaults and overrides are merged, so an implementation can honour an
// explicit override of a parameter it would otherwise derive. Returned
// keys are merged over the composed set.
type Hook func(Params) (map[string]any, error)

// Hooks holds the per-variant derivation hooks. They run in a fixed
// order: Size, then Color, then BackgroundColor. A nil hook contributes
// nothing.
type Hooks struct {
	Size            Hook
	Color           Hook
	BackgroundColor Hook
}

// Definition describes a registered variant: a pair of placeholder
// templates plus variant defaults and hooks. Definitions are immutable
// once registered; registries hand out clones.
type Definition struct {
	Name     string
	HTML     *template.Template
	CSS      *template.Template
	Defaults Params
	Hooks    Hooks
}

// Clone returns a copy safe to mutate. Templates and hooks stay shared,
// both are read-only after construction.
func (d Definition) Clone() Definition {
	d.Defaults = d.Defaults.Clone()
	return d
}

// Bundle is the dual-format display representation of a rendered widget:
// markup, stylesheet, and the instance class both were rendered with.
type Bundle struct {
	HTML  string `json:"html"`
	CSS   string `json:"css"`
	Class string `json:"class,omitempty"`
}

// Defaults returns the base parameter set shared by every variant.
func Defaults() Params {
	return Params{
		"size":             DefaultSize,
		"color":            DefaultColor,
		"background_color": DefaultBackground,
	}
}
