package variants

import (
	"fmt"

	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newRing builds the classic four-quarter ring: overlapping circles with
// one visible border edge each, rotating with staggered delays.
func newRing() model.Definition {
	return model.Definition{
		Name: NameRing,
		HTML: template.Must(template.New(ringHTML)),
		CSS:  template.Must(template.New(ringCSS)),
		Hooks: model.Hooks{
			Size: ringSize,
		},
	}
}

const ringHTML = `<div class="${css_class}"><div></div><div></div><div></div><div></div></div>`

const ringCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  box-sizing: border-box;
  display: block;
  position: absolute;
  width: ${inner_width}px;
  height: ${inner_height}px;
  margin: ${margin}px;
  border: ${border}px solid ${color};
  border-radius: 50%;
  animation: ${css_class} 1.2s cubic-bezier(0.5, 0, 0.5, 1) infinite;
  border-color: ${color} transparent transparent transparent;
}
.${css_class} div:nth-child(1) {
  animation-delay: -0.45s;
}
.${css_class} div:nth-child(2) {
  animation-delay: -0.3s;
}
.${css_class} div:nth-child(3) {
  animation-delay: -0.15s;
}
@keyframes ${css_class} {
  0% {
    transform: rotate(0deg);
  }
  100% {
    transform: rotate(360deg);
  }
}`

// ringSize derives the ring geometry. All pixel values truncate toward
// zero. The inner circle takes 80% of the box; border and margin default
// to a tenth of the size. An explicit border accepts numbers, "25%" of
// the inner diameter, or "6px", and is clamped at half the inner
// diameter. An explicit margin wider than the default grows the outer
// box instead of clipping the circle.
func ringSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	width := int(size)
	inner := int(size * 0.8)

	border := size * 0.1
	if raw, ok := p.Lookup("border"); ok && raw != nil {
		border, err = parseLength(raw, float64(inner))
		if err != nil {
			return nil, err
		}
		if border < 0 {
			return nil, fmt.Errorf("variants: border must be non-negative, got %s", p.String("border"))
		}
	}
	if half := float64(inner) * 0.5; border > half {
		border = half
	}

	margin := int(size * 0.1)
	if raw, ok := p.Lookup("margin"); ok && raw != nil {
		m, err := parseLength(raw, size)
		if err != nil {
			return nil, err
		}
		if m < 0 {
			return nil, fmt.Errorf("variants: margin must be non-negative, got %s", p.String("margin"))
		}
		margin = int(m)
		if m > size*0.1 {
			width = inner + 2*margin
		}
	}

	return map[string]any{
		"width":        width,
		"height":       width,
		"inner_width":  inner,
		"inner_height": inner,
		"border":       int(border),
		"margin":       margin,
	}, nil
}
