package fragment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-loading/pkg/render"
	"github.com/goliatone/go-loading/pkg/renderers/fragment"
	"github.com/goliatone/go-loading/pkg/testsupport"
)

func TestRenderer_RenderContract(t *testing.T) {
	bundle := testsupport.MustLoadBundle(t, filepath.Join("testdata", "bundle.json"))

	renderer, err := fragment.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), bundle, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "fragment_output.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_WithoutStyles(t *testing.T) {
	bundle := testsupport.MustLoadBundle(t, filepath.Join("testdata", "bundle.json"))

	renderer, err := fragment.New(fragment.WithoutStyles())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), bundle, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	got := string(output)
	if strings.Contains(got, "<style>") {
		t.Fatalf("expected no style block, got:\n%s", got)
	}
	if want := bundle.HTML + "\n"; got != want {
		t.Fatalf("markup mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderer_RejectsEmptyMarkup(t *testing.T) {
	renderer, err := fragment.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := renderer.Render(testsupport.Context(), testsupport.MustLoadBundle(t, filepath.Join("testdata", "empty_bundle.json")), render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for bundle without markup")
	}
}

func TestRenderer_Identity(t *testing.T) {
	renderer, err := fragment.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if got := renderer.Name(); got != "fragment" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := renderer.ContentType(); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
}
