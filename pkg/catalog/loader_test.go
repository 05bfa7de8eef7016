package catalog_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-loading/pkg/catalog"
	"github.com/goliatone/go-loading/pkg/testsupport"
	"github.com/goliatone/go-loading/pkg/variants"
)

func TestLoadFS_MergesDocuments(t *testing.T) {
	store := loadStore(t, "basic")
	if store.Empty() {
		t.Fatalf("expected store to contain entries")
	}

	ring, ok := store.Entry("ring")
	if !ok {
		t.Fatalf("entry ring not found")
	}
	if ring.Label != "Ring" {
		t.Fatalf("label mismatch: %s", ring.Label)
	}
	if len(ring.Tags) != 2 || ring.Tags[0] != "spinner" {
		t.Fatalf("tags mismatch: %#v", ring.Tags)
	}
	if got := ring.Params["size"]; got != 56 {
		t.Fatalf("params mismatch: %#v", ring.Params)
	}
	if !strings.HasSuffix(ring.Source, "catalog.yaml") {
		t.Fatalf("source mismatch: %s", ring.Source)
	}
	if strings.Contains(ring.Icon, "script") {
		t.Fatalf("icon not sanitized: %q", ring.Icon)
	}
	if !strings.Contains(ring.Icon, "<circle") {
		t.Fatalf("icon lost its shape: %q", ring.Icon)
	}

	extra, ok := store.Entry("pulse_bar")
	if !ok {
		t.Fatalf("entry pulse_bar not found")
	}
	if got := extra.Params["size"]; got != float64(24) {
		t.Fatalf("json params mismatch: %#v", extra.Params)
	}

	want := []string{"heart", "pulse_bar", "ring"}
	if diff := cmp.Diff(want, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_DuplicateVariant(t *testing.T) {
	_, err := catalog.LoadFS(subDirFS(t, "invalid_duplicate"))
	if err == nil {
		t.Fatalf("expected duplicate variant error")
	}
	if !strings.Contains(err.Error(), "duplicate variant") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFS_MissingLabel(t *testing.T) {
	_, err := catalog.LoadFS(subDirFS(t, "invalid_missing_label"))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "label") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFS_EmptyDocument(t *testing.T) {
	_, err := catalog.LoadFS(subDirFS(t, "invalid_empty"))
	if err == nil {
		t.Fatalf("expected empty document error")
	}
	if !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := catalog.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestDefault_CoversBuiltins(t *testing.T) {
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	for _, name := range variants.NewDefaultRegistry().List() {
		entry, ok := store.Entry(name)
		if !ok {
			t.Fatalf("builtin %q missing from default catalog", name)
		}
		if entry.Label == "" {
			t.Fatalf("builtin %q has no label", name)
		}
		if len(entry.Params) != 0 {
			t.Fatalf("builtin %q should not preset params, got %#v", name, entry.Params)
		}
	}
}

func TestDefault_NamesGolden(t *testing.T) {
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	got := store.Names()
	goldenPath := filepath.Join("testdata", "default_names.golden.json")
	testsupport.WriteGolden(t, goldenPath, got)

	var want []string
	if err := json.Unmarshal(testsupport.MustReadGolden(t, goldenPath), &want); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_EntryCloneIsolated(t *testing.T) {
	store := loadStore(t, "basic")

	entry, ok := store.Entry("ring")
	if !ok {
		t.Fatalf("entry ring not found")
	}
	entry.Params["size"] = 99
	entry.Tags[0] = "mutated"

	fresh, _ := store.Entry("ring")
	if fresh.Params["size"] != 56 {
		t.Fatalf("params leaked into store: %#v", fresh.Params)
	}
	if fresh.Tags[0] != "spinner" {
		t.Fatalf("tags leaked into store: %#v", fresh.Tags)
	}
}

func loadStore(t *testing.T, subdir string) *catalog.Store {
	t.Helper()
	store, err := catalog.LoadFS(subDirFS(t, subdir))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

func subDirFS(t *testing.T, subdir string) fs.FS {
	t.Helper()
	fsys, err := fs.Sub(os.DirFS("testdata"), subdir)
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return fsys
}
