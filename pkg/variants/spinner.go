package variants

import (
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newSpinner builds twelve fading bars arranged like clock marks.
func newSpinner() model.Definition {
	return model.Definition{
		Name: NameSpinner,
		HTML: template.Must(template.New(spinnerHTML)),
		CSS:  template.Must(template.New(spinnerCSS)),
		Hooks: model.Hooks{
			Size: spinnerSize,
		},
	}
}

const spinnerHTML = `<div class="${css_class}"><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div><div></div></div>`

const spinnerCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  transform-origin: ${origin}px ${origin}px;
  animation: ${css_class} 1.2s linear infinite;
}
.${css_class} div:after {
  content: " ";
  display: block;
  position: absolute;
  top: ${bar_top}px;
  left: ${bar_left}px;
  width: ${bar_width}px;
  height: ${bar_height}px;
  border-radius: 20%;
  background: ${color};
}
.${css_class} div:nth-child(1) {
  transform: rotate(0deg);
  animation-delay: -1.1s;
}
.${css_class} div:nth-child(2) {
  transform: rotate(30deg);
  animation-delay: -1s;
}
.${css_class} div:nth-child(3) {
  transform: rotate(60deg);
  animation-delay: -0.9s;
}
.${css_class} div:nth-child(4) {
  transform: rotate(90deg);
  animation-delay: -0.8s;
}
.${css_class} div:nth-child(5) {
  transform: rotate(120deg);
  animation-delay: -0.7s;
}
.${css_class} div:nth-child(6) {
  transform: rotate(150deg);
  animation-delay: -0.6s;
}
.${css_class} div:nth-child(7) {
  transform: rotate(180deg);
  animation-delay: -0.5s;
}
.${css_class} div:nth-child(8) {
  transform: rotate(210deg);
  animation-delay: -0.4s;
}
.${css_class} div:nth-child(9) {
  transform: rotate(240deg);
  animation-delay: -0.3s;
}
.${css_class} div:nth-child(10) {
  transform: rotate(270deg);
  animation-delay: -0.2s;
}
.${css_class} div:nth-child(11) {
  transform: rotate(300deg);
  animation-delay: -0.1s;
}
.${css_class} div:nth-child(12) {
  transform: rotate(330deg);
  animation-delay: 0s;
}
@keyframes ${css_class} {
  0% {
    opacity: 1;
  }
  100% {
    opacity: 0;
  }
}`

func spinnerSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":      int(size),
		"height":     int(size),
		"origin":     scaled(size, 0.5),
		"bar_top":    scaled(size, 0.04),
		"bar_left":   scaled(size, 0.46),
		"bar_width":  scaled(size, 0.08),
		"bar_height": scaled(size, 0.22),
	}, nil
}
