package variants

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// trailStops derives n shades fading the base color toward a lighter,
// desaturated tint of itself, blended in HCL so the hue stays stable.
// Colors colorful cannot parse (named colors, gradients) fall back to a
// flat trail.
func trailStops(color string, n int) []string {
	out := make([]string, n)
	base, err := colorful.Hex(strings.TrimSpace(color))
	if err != nil {
		for i := range out {
			out[i] = color
		}
		return out
	}

	h, c, l := base.Hcl()
	target := colorful.Hcl(h, c*0.25, l+(1-l)*0.75)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = base.BlendHcl(target, t).Clamped().Hex()
	}
	return out
}
