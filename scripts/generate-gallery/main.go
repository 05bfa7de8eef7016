// Command generate-gallery renders every registered animation variant into a
// single static HTML page so the full set can be eyeballed in a browser.
//
// Usage:
//
//	go run ./scripts/generate-gallery -output docs/gallery.html -size 72
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/goliatone/go-loading/pkg/orchestrator"
	"github.com/goliatone/go-loading/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

func main() {
	var (
		outputPath = flag.String("output", "scripts/generate-gallery/out/gallery.html", "Path for the generated gallery page")
		size       = flag.Float64("size", 64, "Animation size in pixels")
		background = flag.String("background", "#f8fafc", "Page background color")
	)
	flag.Parse()

	textColor, err := contrastColor(*background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid background color %q: %v\n", *background, err)
		os.Exit(1)
	}

	ctx := context.Background()
	generator := orchestrator.New()
	catalog := generator.Catalog()

	names := generator.Variants().List()
	var styles strings.Builder
	cells := make([]map[string]any, 0, len(names))
	for _, name := range names {
		bundle, err := generator.RenderBundle(ctx, orchestrator.Request{
			Variant:   name,
			Class:     "ld-gallery-" + name,
			Overrides: map[string]any{"size": *size},
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render %s: %v\n", name, err)
			os.Exit(1)
		}

		styles.WriteString(bundle.CSS)
		styles.WriteString("\n")

		label := name
		if catalog != nil {
			if entry, ok := catalog.Entry(name); ok && entry.Label != "" {
				label = entry.Label
			}
		}
		cells = append(cells, map[string]any{
			"html":  bundle.HTML,
			"label": label,
		})
	}

	engine, err := newEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise template engine: %v\n", err)
		os.Exit(1)
	}

	page, err := engine.RenderTemplate("gallery", map[string]any{
		"background": *background,
		"text_color": textColor,
		"styles":     styles.String(),
		"cells":      cells,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render gallery page: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(*outputPath, page); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write gallery: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated gallery (%d variants) → %s\n", len(names), *outputPath)
}

func newEngine() (*gotemplate.Engine, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	return gotemplate.New(gotemplate.WithFS(sub))
}

// contrastColor picks a readable foreground for the given background by
// comparing lightness in Lab space.
func contrastColor(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", err
	}
	l, _, _ := c.Lab()
	if l > 0.5 {
		return "#0f172a", nil
	}
	return "#f8fafc", nil
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
