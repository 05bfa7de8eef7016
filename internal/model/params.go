package model

import (
	"fmt"
	"sort"
	"strconv"
)

// Clone returns a shallow copy. Values are scalars, so a shallow copy is
// an independent set.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every key from other over p, later values winning.
func (p Params) Merge(other Params) {
	for k, v := range other {
		p[k] = v
	}
}

// Has reports whether key is present with a non-nil value.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Lookup returns the raw value for key.
func (p Params) Lookup(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Number coerces any numeric kind to float64. Non-numeric values fail
// here, at the point a computation needs the number, not earlier.
func Number(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("model: expected number, got %T", v)
	}
}

// Float returns the numeric value for key.
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("model: parameter %q not set", key)
	}
	f, err := Number(v)
	if err != nil {
		return 0, fmt.Errorf("model: parameter %q: expected number, got %T", key, v)
	}
	return f, nil
}

// Int returns the numeric value for key truncated toward zero.
func (p Params) Int(key string) (int, error) {
	f, err := p.Float(key)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// String returns the stringified value for key, or "" when unset.
func (p Params) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	return formatValue(v)
}

// Strings stringifies the whole set for template substitution.
func (p Params) Strings() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = formatValue(v)
	}
	return out
}

// Keys returns the parameter names sorted for stable listings.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatValue renders a scalar the same way on every call. Integer-valued
// floats drop the fraction so size 40.0 substitutes as "40".
func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case int:
		return strconv.Itoa(n)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case fmt.Stringer:
		return n.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
