package variants_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/variants"
)

func TestBuiltinsRenderWithoutUnresolvedPlaceholders(t *testing.T) {
	registry := variants.NewDefaultRegistry()

	for _, name := range registry.List() {
		t.Run(name, func(t *testing.T) {
			def := registry.MustGet(name)
			bundle, err := model.Render(def, model.Params{"css_class": "ld-" + name})
			if err != nil {
				t.Fatalf("render: %v", err)
			}

			if strings.Contains(bundle.CSS, "${") {
				t.Fatalf("css has unresolved placeholders:\n%s", bundle.CSS)
			}
			if strings.Contains(bundle.HTML, "${") {
				t.Fatalf("html has unresolved placeholders:\n%s", bundle.HTML)
			}
			if bundle.Class != "ld-"+name {
				t.Fatalf("class mismatch: %q", bundle.Class)
			}
			if !strings.Contains(bundle.HTML, `class="`+bundle.Class+`"`) {
				t.Fatalf("markup does not carry the instance class:\n%s", bundle.HTML)
			}
			if !strings.Contains(bundle.CSS, "."+bundle.Class) {
				t.Fatalf("stylesheet does not target the instance class:\n%s", bundle.CSS)
			}
			if !strings.Contains(bundle.CSS, model.DefaultColor) {
				t.Fatalf("stylesheet should use the default color:\n%s", bundle.CSS)
			}
		})
	}
}

func TestBuiltinsRenderRepeatably(t *testing.T) {
	registry := variants.NewDefaultRegistry()

	for _, name := range registry.List() {
		def := registry.MustGet(name)
		overrides := model.Params{"css_class": "ld-x", "size": 64}

		first, err := model.Render(def, overrides)
		if err != nil {
			t.Fatalf("%s: first render: %v", name, err)
		}
		second, err := model.Render(def, overrides)
		if err != nil {
			t.Fatalf("%s: second render: %v", name, err)
		}
		if first != second {
			t.Fatalf("%s: repeated renders differ", name)
		}
	}
}

func TestBuiltinsScaleGeometry(t *testing.T) {
	registry := variants.NewDefaultRegistry()

	for _, name := range registry.List() {
		def := registry.MustGet(name)

		params, err := model.Compose(def, model.Params{"size": 80})
		if err != nil {
			t.Fatalf("%s: compose: %v", name, err)
		}
		width, err := params.Int("width")
		if err != nil {
			t.Fatalf("%s: width: %v", name, err)
		}
		if width != 80 {
			t.Fatalf("%s: width should match size: %d", name, width)
		}
	}
}

func TestRollerTrailStops(t *testing.T) {
	def := variants.NewDefaultRegistry().MustGet(variants.NameRoller)

	params, err := model.Compose(def, model.Params{"color": "#2196f3"})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	stops := make([]string, 0, 8)
	for i := 1; i <= 8; i++ {
		stop := params.String(fmt.Sprintf("trail_%d", i))
		if !hex.MatchString(stop) {
			t.Fatalf("trail_%d is not a hex color: %q", i, stop)
		}
		stops = append(stops, stop)
	}
	if stops[0] == stops[7] {
		t.Fatalf("trail should fade across dots: %v", stops)
	}
}

func TestRollerTrailFallbackForNamedColors(t *testing.T) {
	def := variants.NewDefaultRegistry().MustGet(variants.NameRoller)

	params, err := model.Compose(def, model.Params{"color": "rebeccapurple"})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	for i := 1; i <= 8; i++ {
		if got := params.String(fmt.Sprintf("trail_%d", i)); got != "rebeccapurple" {
			t.Fatalf("trail_%d should fall back to the base color: %q", i, got)
		}
	}
}

func TestRippleGeneratedFrames(t *testing.T) {
	def := variants.NewDefaultRegistry().MustGet(variants.NameRipple)

	params, err := model.Compose(def, model.Params{"size": 40})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	frames := params.String("frames")

	for _, want := range []string{
		"0% {",
		"25% {",
		"50% {",
		"75% {",
		"100% {",
		// start collapsed in the centre
		"top: 18px",
		"width: 0px",
		"opacity: 1;",
		// eased halfway step, not a linear 18px
		"width: 31.5px",
		// full extent at the end
		"width: 36px",
		"top: 0px",
		"opacity: 0;",
	} {
		if !strings.Contains(frames, want) {
			t.Fatalf("frames missing %q:\n%s", want, frames)
		}
	}
}
