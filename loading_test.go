package loading_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	loading "github.com/goliatone/go-loading"
	"github.com/goliatone/go-loading/pkg/testsupport"
)

func TestRender_OneShot(t *testing.T) {
	output, err := loading.Render(testsupport.Context(), loading.Request{
		Variant: "ring",
		Class:   "ld-demo",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, "<style>") {
		t.Fatalf("output missing style block:\n%s", html)
	}
	if !strings.Contains(html, `class="ld-demo"`) {
		t.Fatalf("output missing instance class:\n%s", html)
	}
}

func TestRenderHTML_GeneratesClass(t *testing.T) {
	output, err := loading.RenderHTML(testsupport.Context(), "ellipsis")
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(string(output), `class="ld-`) {
		t.Fatalf("expected generated instance class:\n%s", output)
	}
}

func TestRenderHTML_UnknownVariant(t *testing.T) {
	_, err := loading.RenderHTML(testsupport.Context(), "warp_core")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected unknown variant error, got %v", err)
	}
}

func TestVariants_CoversBuiltins(t *testing.T) {
	want := []string{
		"dual_ring",
		"ellipsis",
		"facebook",
		"grid",
		"heart",
		"hourglass",
		"ring",
		"ripple",
		"roller",
		"spinner",
	}
	if diff := cmp.Diff(want, loading.Variants()); diff != "" {
		t.Fatalf("variant list mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistry_AcceptsCustomDefinitions(t *testing.T) {
	registry := loading.NewRegistry()
	if !registry.Has("ring") {
		t.Fatalf("expected built in variants preloaded")
	}

	def := registry.MustGet("ring")
	def.Name = "brand_ring"
	if err := registry.Register(def); err != nil {
		t.Fatalf("register custom variant: %v", err)
	}
	if !registry.Has("brand_ring") {
		t.Fatalf("expected custom variant registered")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(loading.EmbeddedTemplates(), "templates/page.tmpl")
	if err != nil {
		t.Fatalf("read page template: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Fatalf("unexpected page template content")
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	data, err := fs.ReadFile(loading.EmbeddedCatalog(), "catalog.yaml")
	if err != nil {
		t.Fatalf("read catalog document: %v", err)
	}
	if !strings.Contains(string(data), "variants:") {
		t.Fatalf("unexpected catalog document content")
	}
}
