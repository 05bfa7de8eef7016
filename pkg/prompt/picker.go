// Package prompt implements the interactive variant picker behind the
// command line tool. A Driver seam wraps the terminal library so the
// flow stays scriptable in tests.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/orchestrator"
)

// Option configures the picker.
type Option func(*Picker)

// WithDriver overrides the terminal driver used by the picker.
func WithDriver(driver Driver) Option {
	return func(p *Picker) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithPageSize caps how many options the select prompts show at once.
func WithPageSize(size int) Option {
	return func(p *Picker) {
		if size > 0 {
			p.pageSize = size
		}
	}
}

// Picker walks the user through assembling a render request: animation,
// parameter overrides, output format, caption. Catalog labels decorate
// the variant listing when a catalog is loaded.
type Picker struct {
	orch     *orchestrator.Orchestrator
	driver   Driver
	pageSize int
}

// New builds a picker bound to an orchestrator.
func New(orch *orchestrator.Orchestrator, options ...Option) (*Picker, error) {
	if orch == nil {
		return nil, errors.New("prompt: orchestrator is required")
	}

	p := &Picker{
		orch:   orch,
		driver: newSurveyDriver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p, nil
}

// Run executes the interactive flow and returns the assembled request.
// The caller hands the request to the orchestrator to render.
func (p *Picker) Run(ctx context.Context) (orchestrator.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	names := p.orch.Variants().List()
	if len(names) == 0 {
		return orchestrator.Request{}, errors.New("prompt: no variants registered")
	}

	variant, err := p.pickVariant(ctx, names)
	if err != nil {
		return orchestrator.Request{}, err
	}
	req := orchestrator.Request{Variant: variant}

	customize, err := p.driver.Confirm(ctx, ConfirmConfig{
		Message: "Customize parameters?",
		Help:    "Size, colors, and the css class hook",
	})
	if err != nil {
		return orchestrator.Request{}, err
	}
	if customize {
		overrides, err := p.collectOverrides(ctx)
		if err != nil {
			return orchestrator.Request{}, err
		}
		if len(overrides) > 0 {
			req.Overrides = overrides
		}

		class, err := p.promptClass(ctx)
		if err != nil {
			return orchestrator.Request{}, err
		}
		req.Class = class
	}

	renderer, err := p.pickRenderer(ctx)
	if err != nil {
		return orchestrator.Request{}, err
	}
	req.Renderer = renderer

	label, err := p.promptOptional(ctx, "Caption (optional)", "")
	if err != nil {
		return orchestrator.Request{}, err
	}
	req.Label = label

	if renderer == "page" {
		title, err := p.promptOptional(ctx, "Page title", "")
		if err != nil {
			return orchestrator.Request{}, err
		}
		req.Title = title
	}

	return req, nil
}

func (p *Picker) pickVariant(ctx context.Context, names []string) (string, error) {
	options := make([]string, len(names))
	for i, name := range names {
		options[i] = p.displayOption(name)
	}

	for {
		idx, err := p.driver.Select(ctx, SelectConfig{
			Message:      "Pick a loading animation",
			Options:      options,
			DefaultIndex: 0,
			PageSize:     p.pageSize,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(names) {
			_ = p.driver.Info(ctx, "Invalid selection")
			continue
		}
		return names[idx], nil
	}
}

// displayOption decorates a variant name with its catalog label when one
// is available, e.g. "Dual ring (dual_ring)".
func (p *Picker) displayOption(name string) string {
	store := p.orch.Catalog()
	if store == nil {
		return name
	}
	entry, ok := store.Entry(name)
	if !ok || entry.Label == "" || strings.EqualFold(entry.Label, name) {
		return name
	}
	return fmt.Sprintf("%s (%s)", entry.Label, name)
}

func (p *Picker) collectOverrides(ctx context.Context) (map[string]any, error) {
	overrides := map[string]any{}

	size, ok, err := p.promptSize(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		overrides["size"] = size
	}

	color, err := p.promptOptional(ctx, "Color", model.DefaultColor)
	if err != nil {
		return nil, err
	}
	if color != "" {
		overrides["color"] = color
	}

	background, err := p.promptOptional(ctx, "Background color", model.DefaultBackground)
	if err != nil {
		return nil, err
	}
	if background != "" {
		overrides["background_color"] = background
	}

	return overrides, nil
}

func (p *Picker) promptSize(ctx context.Context) (float64, bool, error) {
	for {
		input, err := p.driver.Input(ctx, InputConfig{
			Message: "Size in px (blank keeps the default)",
		})
		if err != nil {
			return 0, false, err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			return 0, false, nil
		}

		size, err := strconv.ParseFloat(input, 64)
		if err != nil {
			_ = p.driver.Info(ctx, fmt.Sprintf("Invalid size: %v", err))
			continue
		}
		if size <= 0 {
			_ = p.driver.Info(ctx, "Invalid size: must be positive")
			continue
		}
		return size, true, nil
	}
}

func (p *Picker) promptClass(ctx context.Context) (string, error) {
	for {
		input, err := p.driver.Input(ctx, InputConfig{
			Message: "CSS class (blank to auto-generate)",
		})
		if err != nil {
			return "", err
		}
		class := strings.TrimSpace(input)
		if class == "" {
			return "", nil
		}
		if strings.ContainsAny(class, " \t") {
			_ = p.driver.Info(ctx, "Invalid class: whitespace not allowed")
			continue
		}
		return class, nil
	}
}

func (p *Picker) promptOptional(ctx context.Context, message, defaultValue string) (string, error) {
	input, err := p.driver.Input(ctx, InputConfig{
		Message: message,
		Default: defaultValue,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (p *Picker) pickRenderer(ctx context.Context) (string, error) {
	registry := p.orch.Renderers()
	if registry == nil {
		return "", nil
	}
	names := registry.List()
	if len(names) == 0 {
		return "", nil
	}

	defaultIdx := indexOf(names, "fragment")
	if defaultIdx < 0 {
		defaultIdx = 0
	}

	for {
		idx, err := p.driver.Select(ctx, SelectConfig{
			Message:      "Output format",
			Options:      names,
			DefaultIndex: defaultIdx,
			PageSize:     p.pageSize,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(names) {
			_ = p.driver.Info(ctx, "Invalid selection")
			continue
		}
		return names[idx], nil
	}
}
