package model

import (
	"fmt"
)

// Compose builds the full substitution set for a definition: base
// defaults, then variant defaults, then caller overrides, then hook
// output. Hooks run in the fixed Size, Color, BackgroundColor order and
// later writes win, so a hook that derives a key another hook also wrote
// overrides it intentionally.
func Compose(def Definition, overrides Params) (Params, error) {
	params := Defaults()
	params.Merge(def.Defaults)
	params.Merge(overrides)

	steps := []struct {
		name string
		hook Hook
	}{
		{"size", def.Hooks.Size},
		{"color", def.Hooks.Color},
		{"background_color", def.Hooks.BackgroundColor},
	}
	for _, step := range steps {
		if step.hook == nil {
			continue
		}
		derived, err := step.hook(params)
		if err != nil {
			return nil, fmt.Errorf("model: %s: %s hook: %w", def.Name, step.name, err)
		}
		for k, v := range derived {
			params[k] = v
		}
	}
	return params, nil
}

// Render composes the parameter set once and substitutes both templates
// from it, so markup and stylesheet always agree on derived geometry.
// Errors from hooks or from missing placeholders surface unwrapped via
// errors.As; there is no partial output.
func Render(def Definition, overrides Params) (Bundle, error) {
	params, err := Compose(def, overrides)
	if err != nil {
		return Bundle{}, err
	}

	values := params.Strings()
	css, err := def.CSS.Render(values)
	if err != nil {
		return Bundle{}, fmt.Errorf("model: %s: render css: %w", def.Name, err)
	}
	html, err := def.HTML.Render(values)
	if err != nil {
		return Bundle{}, fmt.Errorf("model: %s: render html: %w", def.Name, err)
	}

	return Bundle{HTML: html, CSS: css, Class: values["css_class"]}, nil
}
