package variants

import (
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newHeart builds a beating heart: a rotated square with two round lobes
// pulsing on a heartbeat curve.
func newHeart() model.Definition {
	return model.Definition{
		Name: NameHeart,
		HTML: template.Must(template.New(heartHTML)),
		CSS:  template.Must(template.New(heartCSS)),
		Hooks: model.Hooks{
			Size: heartSize,
		},
	}
}

const heartHTML = `<div class="${css_class}"><div></div></div>`

const heartCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
  transform: rotate(45deg);
  transform-origin: ${origin}px ${origin}px;
}
.${css_class} div {
  top: ${inset}px;
  left: ${inset}px;
  position: absolute;
  width: ${cube}px;
  height: ${cube}px;
  background: ${color};
  animation: ${css_class} 1.2s infinite cubic-bezier(0.215, 0.61, 0.355, 1);
}
.${css_class} div:before,
.${css_class} div:after {
  content: " ";
  position: absolute;
  display: block;
  width: ${cube}px;
  height: ${cube}px;
  background: ${color};
}
.${css_class} div:before {
  left: -${shift}px;
  border-radius: 50% 0 0 50%;
}
.${css_class} div:after {
  top: -${shift}px;
  border-radius: 50% 50% 0 0;
}
@keyframes ${css_class} {
  0% {
    transform: scale(0.95);
  }
  5% {
    transform: scale(1.1);
  }
  39% {
    transform: scale(0.85);
  }
  45% {
    transform: scale(1);
  }
  60% {
    transform: scale(0.95);
  }
  100% {
    transform: scale(0.9);
  }
}`

func heartSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":  int(size),
		"height": int(size),
		"origin": scaled(size, 0.5),
		"inset":  scaled(size, 0.4),
		"cube":   scaled(size, 0.4),
		"shift":  scaled(size, 0.3),
	}, nil
}
