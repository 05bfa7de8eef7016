package variants

import (
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newEllipsis builds three sliding dots: the head dot scales in, the two
// middle dots translate one slot right, the tail dot scales out.
func newEllipsis() model.Definition {
	return model.Definition{
		Name: NameEllipsis,
		HTML: template.Must(template.New(ellipsisHTML)),
		CSS:  template.Must(template.New(ellipsisCSS)),
		Hooks: model.Hooks{
			Size: ellipsisSize,
		},
	}
}

const ellipsisHTML = `<div class="${css_class}"><div></div><div></div><div></div><div></div></div>`

const ellipsisCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  position: absolute;
  top: ${top}px;
  width: ${dot}px;
  height: ${dot}px;
  border-radius: 50%;
  background: ${color};
  animation-timing-function: cubic-bezier(0, 1, 1, 0);
}
.${css_class} div:nth-child(1) {
  left: ${left_1}px;
  animation: ${css_class}-in 0.6s infinite;
}
.${css_class} div:nth-child(2) {
  left: ${left_1}px;
  animation: ${css_class}-slide 0.6s infinite;
}
.${css_class} div:nth-child(3) {
  left: ${left_2}px;
  animation: ${css_class}-slide 0.6s infinite;
}
.${css_class} div:nth-child(4) {
  left: ${left_3}px;
  animation: ${css_class}-out 0.6s infinite;
}
@keyframes ${css_class}-in {
  0% {
    transform: scale(0);
  }
  100% {
    transform: scale(1);
  }
}
@keyframes ${css_class}-out {
  0% {
    transform: scale(1);
  }
  100% {
    transform: scale(0);
  }
}
@keyframes ${css_class}-slide {
  0% {
    transform: translate(0, 0);
  }
  100% {
    transform: translate(${shift}px, 0);
  }
}`

func ellipsisSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":  int(size),
		"height": int(size),
		"dot":    scaled(size, 1.0/6),
		"top":    scaled(size, 5.0/12),
		"left_1": scaled(size, 0.1),
		"left_2": scaled(size, 0.4),
		"left_3": scaled(size, 0.7),
		"shift":  scaled(size, 0.3),
	}, nil
}
