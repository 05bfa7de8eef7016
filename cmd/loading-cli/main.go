package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-loading/pkg/orchestrator"
	"github.com/goliatone/go-loading/pkg/prompt"
)

func main() {
	variant := flag.String("variant", "ring", "animation to render")
	renderer := flag.String("renderer", "fragment", "output renderer (fragment, page, notebook)")
	size := flag.Float64("size", 0, "box size in px (0 keeps the default)")
	color := flag.String("color", "", "foreground color")
	background := flag.String("background", "", "background color")
	border := flag.String("border", "", "border thickness (number, px, or %)")
	class := flag.String("class", "", "css class (generated when empty)")
	title := flag.String("title", "", "document title for the page renderer")
	label := flag.String("label", "", "caption shown with page and notebook output")
	output := flag.String("output", "", "output file (stdout if empty)")
	list := flag.Bool("list", false, "list available variants and exit")
	interactive := flag.Bool("interactive", false, "assemble the request through prompts")
	flag.Parse()

	ctx := context.Background()
	gen := orchestrator.New()

	if *list {
		printVariants(gen)
		return
	}

	req := orchestrator.Request{
		Variant:  *variant,
		Renderer: *renderer,
		Class:    *class,
		Title:    *title,
		Label:    *label,
	}
	if overrides := collectOverrides(*size, *color, *background, *border); len(overrides) > 0 {
		req.Overrides = overrides
	}

	if *interactive {
		picker, err := prompt.New(gen)
		if err != nil {
			log.Fatalf("Failed to start picker: %v", err)
		}
		req, err = picker.Run(ctx)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return
			}
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	rendered, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to render widget: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Widget written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func collectOverrides(size float64, color, background, border string) map[string]any {
	overrides := map[string]any{}
	if size > 0 {
		overrides["size"] = size
	}
	if v := strings.TrimSpace(color); v != "" {
		overrides["color"] = v
	}
	if v := strings.TrimSpace(background); v != "" {
		overrides["background_color"] = v
	}
	if v := strings.TrimSpace(border); v != "" {
		overrides["border"] = v
	}
	return overrides
}

func printVariants(gen *orchestrator.Orchestrator) {
	store := gen.Catalog()
	for _, name := range gen.Variants().List() {
		if store != nil {
			if entry, ok := store.Entry(name); ok && entry.Label != "" {
				if entry.Description != "" {
					fmt.Printf("%-12s %s: %s\n", name, entry.Label, entry.Description)
					continue
				}
				fmt.Printf("%-12s %s\n", name, entry.Label)
				continue
			}
		}
		fmt.Println(name)
	}
}
