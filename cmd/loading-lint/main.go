package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/orchestrator"
)

type violation struct {
	variant string
	message string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nCross-check catalog metadata against the variant registry and verify every variant renders with defaults.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	ctx := context.Background()
	gen := orchestrator.New()

	violations := lintCatalog(gen)
	violations = append(violations, lintCatalogParams(gen)...)
	violations = append(violations, lintRenderability(ctx, gen)...)

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].variant == violations[j].variant {
				return violations[i].message < violations[j].message
			}
			return violations[i].variant < violations[j].variant
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s\n", v.variant, v.message)
		}
		os.Exit(1)
	}
}

// lintCatalog flags registry/catalog drift in both directions: registered
// variants without metadata and metadata for variants that no longer exist.
func lintCatalog(gen *orchestrator.Orchestrator) []violation {
	store := gen.Catalog()
	if store == nil {
		return []violation{{variant: "catalog", message: "no catalog loaded"}}
	}

	var result []violation
	seen := make(map[string]bool)
	for _, name := range gen.Variants().List() {
		seen[name] = true
		entry, ok := store.Entry(name)
		if !ok {
			result = append(result, violation{variant: name, message: "registered variant missing a catalog entry"})
			continue
		}
		if entry.Label == "" {
			result = append(result, violation{variant: name, message: "catalog entry has no label"})
		}
	}
	for _, name := range store.Names() {
		if !seen[name] {
			result = append(result, violation{variant: name, message: "catalog entry has no registered variant"})
		}
	}
	return result
}

// lintCatalogParams flags catalog presets that no template placeholder or
// hook consumes, which usually means a typo in the document.
func lintCatalogParams(gen *orchestrator.Orchestrator) []violation {
	store := gen.Catalog()
	if store == nil {
		return nil
	}

	var result []violation
	for _, name := range store.Names() {
		def, err := gen.Variants().Get(name)
		if err != nil {
			continue
		}
		entry, ok := store.Entry(name)
		if !ok || len(entry.Params) == 0 {
			continue
		}

		known := knownParams(def)
		keys := make([]string, 0, len(entry.Params))
		for key := range entry.Params {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if !known[key] {
				result = append(result, violation{variant: name, message: fmt.Sprintf("catalog preset %q matches no template parameter", key)})
			}
		}
	}
	return result
}

// knownParams collects the placeholder names of both templates plus the
// hook inputs that never appear as placeholders directly.
func knownParams(def model.Definition) map[string]bool {
	known := map[string]bool{
		"size":             true,
		"color":            true,
		"background_color": true,
		"border":           true,
		"margin":           true,
		"css_class":        true,
	}
	for _, name := range def.HTML.Names() {
		known[name] = true
	}
	for _, name := range def.CSS.Names() {
		known[name] = true
	}
	return known
}

// lintRenderability renders every variant under default parameters and
// checks the output carries scoped markup and an animation.
func lintRenderability(ctx context.Context, gen *orchestrator.Orchestrator) []violation {
	var result []violation
	for _, name := range gen.Variants().List() {
		bundle, err := gen.RenderBundle(ctx, orchestrator.Request{Variant: name})
		if err != nil {
			result = append(result, violation{variant: name, message: fmt.Sprintf("render failed: %v", err)})
			continue
		}
		if strings.TrimSpace(bundle.HTML) == "" {
			result = append(result, violation{variant: name, message: "render produced empty markup"})
		}
		if strings.TrimSpace(bundle.CSS) == "" {
			result = append(result, violation{variant: name, message: "render produced empty stylesheet"})
			continue
		}
		if !strings.Contains(bundle.CSS, "@keyframes") {
			result = append(result, violation{variant: name, message: "stylesheet has no keyframes"})
		}
		if bundle.Class == "" || !strings.Contains(bundle.CSS, "."+bundle.Class) {
			result = append(result, violation{variant: name, message: "stylesheet is not scoped to the instance class"})
		}
	}
	return result
}
