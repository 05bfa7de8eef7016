package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }

func (s stubRenderer) Render(_ context.Context, bundle model.Bundle, _ render.RenderOptions) ([]byte, error) {
	return []byte(bundle.Class), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "fragment"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("fragment")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "fragment" {
		t.Fatalf("name mismatch: %q", renderer.Name())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "page"})

	err := registry.Register(stubRenderer{name: "page"})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryRejectsUnnamed(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := render.NewRegistry()

	_, err := registry.Get("svg")
	if err == nil {
		t.Fatalf("expected not found error")
	}
	if !strings.Contains(err.Error(), `"svg" not found`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := render.NewRegistry()
	for _, name := range []string{"page", "fragment", "notebook"} {
		registry.MustRegister(stubRenderer{name: name})
	}

	want := []string{"fragment", "notebook", "page"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("notebook") {
		t.Fatalf("expected notebook to be registered")
	}
}
