package variants_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/testsupport"
	"github.com/goliatone/go-loading/pkg/variants"
)

func TestRing_BundleGolden(t *testing.T) {
	def := variants.NewDefaultRegistry().MustGet(variants.NameRing)

	bundle, err := model.Render(def, model.Params{"css_class": "ld-ring-golden"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "ring_bundle.golden.json")
	testsupport.WriteBundle(t, goldenPath, bundle)
	want := testsupport.MustLoadBundle(t, goldenPath)

	if diff := testsupport.CompareGolden(want, bundle); diff != "" {
		t.Fatalf("bundle mismatch (-want +got):\n%s", diff)
	}
}
