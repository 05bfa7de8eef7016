package variants

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fogleman/ease"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newRipple builds two expanding rings half a period apart. The
// expansion keyframes are generated from an ease-out cubic, so the
// animation runs on a linear timing function.
func newRipple() model.Definition {
	return model.Definition{
		Name: NameRipple,
		HTML: template.Must(template.New(rippleHTML)),
		CSS:  template.Must(template.New(rippleCSS)),
		Hooks: model.Hooks{
			Size: rippleSize,
		},
	}
}

const rippleHTML = `<div class="${css_class}"><div></div><div></div></div>`

const rippleCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  position: absolute;
  border: ${border}px solid ${color};
  opacity: 1;
  border-radius: 50%;
  animation: ${css_class} 1s linear infinite;
}
.${css_class} div:nth-child(2) {
  animation-delay: -0.5s;
}
@keyframes ${css_class} {
${frames}
}`

func rippleSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":  int(size),
		"height": int(size),
		"border": scaled(size, 0.05),
		"frames": rippleFrames(size),
	}, nil
}

// rippleFrames emits the keyframe block: the wave grows from the centre
// to 90% of the box on an ease-out cubic while fading linearly.
func rippleFrames(size float64) string {
	end := size * 0.9
	half := size * 0.45

	var b strings.Builder
	steps := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, t := range steps {
		if i > 0 {
			b.WriteString("\n")
		}
		diameter := round2(end * ease.OutCubic(t))
		inset := round2(half - diameter/2)
		fmt.Fprintf(&b, "  %s%% {\n", formatFloat(t*100))
		fmt.Fprintf(&b, "    top: %spx;\n", formatFloat(inset))
		fmt.Fprintf(&b, "    left: %spx;\n", formatFloat(inset))
		fmt.Fprintf(&b, "    width: %spx;\n", formatFloat(diameter))
		fmt.Fprintf(&b, "    height: %spx;\n", formatFloat(diameter))
		fmt.Fprintf(&b, "    opacity: %s;\n", formatFloat(round2(1-t)))
		b.WriteString("  }")
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
