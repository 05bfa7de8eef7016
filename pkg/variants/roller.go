package variants

import (
	"fmt"
	"math"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newRoller builds eight dots chasing around a circle with staggered
// delays. The color hook derives a trail: each dot fades further toward
// a lighter tint of the base color.
func newRoller() model.Definition {
	return model.Definition{
		Name: NameRoller,
		HTML: template.Must(template.New(rollerHTML)),
		CSS:  template.Must(template.New(rollerCSS)),
		Hooks: model.Hooks{
			Size:  rollerSize,
			Color: rollerColor,
		},
	}
}

const rollerHTML = `<div class="${css_class}"><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div></div>`

const rollerCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  animation: ${css_class} 1.2s cubic-bezier(0.5, 0, 0.5, 1) infinite;
  transform-origin: ${origin}px ${origin}px;
}
.${css_class} div:after {
  content: " ";
  display: block;
  position: absolute;
  width: ${dot}px;
  height: ${dot}px;
  border-radius: 50%;
  background: ${color};
  margin: ${dot_margin}px 0 0 ${dot_margin}px;
}
.${css_class} div:nth-child(1) {
  animation-delay: -0.036s;
}
.${css_class} div:nth-child(1):after {
  top: ${top_1}px;
  left: ${left_1}px;
  background: ${trail_1};
}
.${css_class} div:nth-child(2) {
  animation-delay: -0.072s;
}
.${css_class} div:nth-child(2):after {
  top: ${top_2}px;
  left: ${left_2}px;
  background: ${trail_2};
}
.${css_class} div:nth-child(3) {
  animation-delay: -0.108s;
}
.${css_class} div:nth-child(3):after {
  top: ${top_3}px;
  left: ${left_3}px;
  background: ${trail_3};
}
.${css_class} div:nth-child(4) {
  animation-delay: -0.144s;
}
.${css_class} div:nth-child(4):after {
  top: ${top_4}px;
  left: ${left_4}px;
  background: ${trail_4};
}
.${css_class} div:nth-child(5) {
  animation-delay: -0.18s;
}
.${css_class} div:nth-child(5):after {
  top: ${top_5}px;
  left: ${left_5}px;
  background: ${trail_5};
}
.${css_class} div:nth-child(6) {
  animation-delay: -0.216s;
}
.${css_class} div:nth-child(6):after {
  top: ${top_6}px;
  left: ${left_6}px;
  background: ${trail_6};
}
.${css_class} div:nth-child(7) {
  animation-delay: -0.252s;
}
.${css_class} div:nth-child(7):after {
  top: ${top_7}px;
  left: ${left_7}px;
  background: ${trail_7};
}
.${css_class} div:nth-child(8) {
  animation-delay: -0.288s;
}
.${css_class} div:nth-child(8):after {
  top: ${top_8}px;
  left: ${left_8}px;
  background: ${trail_8};
}
@keyframes ${css_class} {
  0% {
    transform: rotate(0deg);
  }
  100% {
    transform: rotate(360deg);
  }
}`

// rollerSize places the eight dots on a circle of radius 0.4*size around
// the centre, 15 degrees apart starting at 45.
func rollerSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	out := map[string]any{
		"width":      int(size),
		"height":     int(size),
		"origin":     scaled(size, 0.5),
		"dot":        scaled(size, 0.09),
		"dot_margin": scaled(size, -0.045),
	}

	radius := size * 0.4
	centre := size * 0.5
	for k := 0; k < 8; k++ {
		angle := (45 + 15*float64(k)) * math.Pi / 180
		sin, cos := math.Sincos(angle)
		out[fmt.Sprintf("top_%d", k+1)] = round2(centre + radius*sin)
		out[fmt.Sprintf("left_%d", k+1)] = round2(centre + radius*cos)
	}
	return out, nil
}

func rollerColor(p model.Params) (map[string]any, error) {
	stops := trailStops(p.String("color"), 8)
	out := make(map[string]any, len(stops))
	for i, stop := range stops {
		out[fmt.Sprintf("trail_%d", i+1)] = stop
	}
	return out, nil
}
