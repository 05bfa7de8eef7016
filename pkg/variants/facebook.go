package variants

import (
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newFacebook builds three vertical bars stretching out of phase.
func newFacebook() model.Definition {
	return model.Definition{
		Name: NameFacebook,
		HTML: template.Must(template.New(facebookHTML)),
		CSS:  template.Must(template.New(facebookCSS)),
		Hooks: model.Hooks{
			Size: facebookSize,
		},
	}
}

const facebookHTML = `<div class="${css_class}"><div></div><div></div><div></div></div>`

const facebookCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  display: inline-block;
  position: absolute;
  width: ${bar}px;
  background: ${color};
  animation: ${css_class} 1.2s cubic-bezier(0, 0.5, 0.5, 1) infinite;
}
.${css_class} div:nth-child(1) {
  left: ${left_1}px;
  animation-delay: -0.24s;
}
.${css_class} div:nth-child(2) {
  left: ${left_2}px;
  animation-delay: -0.12s;
}
.${css_class} div:nth-child(3) {
  left: ${left_3}px;
  animation-delay: 0s;
}
@keyframes ${css_class} {
  0% {
    top: ${top_tall}px;
    height: ${height_tall}px;
  }
  50%, 100% {
    top: ${top_short}px;
    height: ${height_short}px;
  }
}`

func facebookSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":        int(size),
		"height":       int(size),
		"bar":          scaled(size, 0.2),
		"left_1":       scaled(size, 0.1),
		"left_2":       scaled(size, 0.4),
		"left_3":       scaled(size, 0.7),
		"top_tall":     scaled(size, 0.1),
		"height_tall":  scaled(size, 0.8),
		"top_short":    scaled(size, 0.3),
		"height_short": scaled(size, 0.4),
	}, nil
}
