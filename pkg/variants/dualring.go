package variants

import (
	"github.com/goliatone/go-loading/pkg/model"
	"github.com/goliatone/go-loading/pkg/template"
)

// newDualRing builds a single circle with two opposing visible border
// edges spinning at constant speed.
func newDualRing() model.Definition {
	return model.Definition{
		Name: NameDualRing,
		HTML: template.Must(template.New(dualRingHTML)),
		CSS:  template.Must(template.New(dualRingCSS)),
		Hooks: model.Hooks{
			Size: dualRingSize,
		},
	}
}

const dualRingHTML = `<div class="${css_class}"><div></div></div>`

const dualRingCSS = `.${css_class} {
  display: inline-block;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class} div {
  box-sizing: border-box;
  display: block;
  width: ${inner_width}px;
  height: ${inner_height}px;
  margin: ${margin}px;
  border-radius: 50%;
  border: ${border}px solid ${color};
  border-color: ${color} transparent ${color} transparent;
  animation: ${css_class} 1.2s linear infinite;
}
@keyframes ${css_class} {
  0% {
    transform: rotate(0deg);
  }
  100% {
    transform: rotate(360deg);
  }
}`

func dualRingSize(p model.Params) (map[string]any, error) {
	size, err := sizeParam(p)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"width":        int(size),
		"height":       int(size),
		"inner_width":  int(size * 0.8),
		"inner_height": int(size * 0.8),
		"margin":       int(size * 0.1),
		"border":       scaled(size, 0.08),
	}, nil
}
