package variants

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-loading/pkg/model"
)

// sizeParam reads the base size. Non-numeric overrides fail here, when
// the geometry math first needs the number.
func sizeParam(p model.Params) (float64, error) {
	size, err := p.Float("size")
	if err != nil {
		return 0, err
	}
	if size <= 0 {
		return 0, fmt.Errorf("variants: size must be positive, got %s", p.String("size"))
	}
	return size, nil
}

// scaled resolves a canonical 80px-box ratio against size, rounded to
// two decimals to keep sub-pixel geometry readable in the emitted css.
func scaled(size, ratio float64) float64 {
	return round2(size * ratio)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseLength resolves a length override. Numbers pass through, "25%"
// resolves against ref, "6px" is absolute pixels, and bare numeric
// strings count as pixels.
func parseLength(v any, ref float64) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return model.Number(v)
	}

	t := strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(t, "%"):
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(t, "%")), 64)
		if err != nil {
			return 0, fmt.Errorf("variants: invalid length %q", s)
		}
		return ref * f / 100, nil
	case strings.HasSuffix(t, "px"):
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(t, "px")), 64)
		if err != nil {
			return 0, fmt.Errorf("variants: invalid length %q", s)
		}
		return f, nil
	default:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("variants: invalid length %q", s)
		}
		return f, nil
	}
}
