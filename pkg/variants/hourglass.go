package variants

import (
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newHourglass builds two facing triangles flipping over in paired
// half-turns with an ease-in, ease-out rhythm.
func newHourglass() model.Definition {
	return model.Definition{
		Name: NameHourglass,
		HTML: template.Must(template.New(hourglassHTML)),
		CSS:  template.Must(template.New(hourglassCSS)),
		Hooks: model.Hooks{
			Size: hourglassSize,
		},
	}
}

const hourglassHTML = `<div class="${css_class}"><div></div></div>`

const hourglassCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  display: block;
  border-radius: 50%;
  width: 0;
  height: 0;
  margin: ${margin}px;
  box-sizing: border-box;
  border: ${border}px solid ${color};
  border-color: ${color} transparent ${color} transparent;
  animation: ${css_class} 1.2s infinite;
}
@keyframes ${css_class} {
  0% {
    transform: rotate(0);
    animation-timing-function: cubic-bezier(0.55, 0.055, 0.675, 0.19);
  }
  50% {
    transform: rotate(900deg);
    animation-timing-function: cubic-bezier(0.215, 0.61, 0.355, 1);
  }
  100% {
    transform: rotate(1800deg);
  }
}`

func hourglassSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":  int(size),
		"height": int(size),
		"margin": scaled(size, 0.1),
		"border": scaled(size, 0.4),
	}, nil
}
