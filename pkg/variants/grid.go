package variants

import (
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newGrid builds a three-by-three dot grid pulsing along the diagonals.
func newGrid() model.Definition {
	return model.Definition{
		Name: NameGrid,
		HTML: template.Must(template.New(gridHTML)),
		CSS:  template.Must(template.New(gridCSS)),
		Hooks: model.Hooks{
			Size: gridSize,
		},
	}
}

const gridHTML = `<div class="${css_class}"><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div></div>`

const gridCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  position: absolute;
  width: ${dot}px;
  height: ${dot}px;
  border-radius: 50%;
  background: ${color};
  animation: ${css_class} 1.2s linear infinite;
}
.${css_class} div:nth-child(1) {
  top: ${pos_1}px;
  left: ${pos_1}px;
  animation-delay: 0s;
}
.${css_class} div:nth-child(2) {
  top: ${pos_1}px;
  left: ${pos_2}px;
  animation-delay: -0.4s;
}
.${css_class} div:nth-child(3) {
  top: ${pos_1}px;
  left: ${pos_3}px;
  animation-delay: -0.8s;
}
.${css_class} div:nth-child(4) {
  top: ${pos_2}px;
  left: ${pos_1}px;
  animation-delay: -0.4s;
}
.${css_class} div:nth-child(5) {
  top: ${pos_2}px;
  left: ${pos_2}px;
  animation-delay: -0.8s;
}
.${css_class} div:nth-child(6) {
  top: ${pos_2}px;
  left: ${pos_3}px;
  animation-delay: -1.2s;
}
.${css_class} div:nth-child(7) {
  top: ${pos_3}px;
  left: ${pos_1}px;
  animation-delay: -0.8s;
}
.${css_class} div:nth-child(8) {
  top: ${pos_3}px;
  left: ${pos_2}px;
  animation-delay: -1.2s;
}
.${css_class} div:nth-child(9) {
  top: ${pos_3}px;
  left: ${pos_3}px;
  animation-delay: -1.6s;
}
@keyframes ${css_class} {
  0%, 100% {
    opacity: 1;
  }
  50% {
    opacity: 0.5;
  }
}`

func gridSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":  int(size),
		"height": int(size),
		"dot":    scaled(size, 0.2),
		"pos_1":  scaled(size, 0.1),
		"pos_2":  scaled(size, 0.4),
		"pos_3":  scaled(size, 0.7),
	}, nil
}
