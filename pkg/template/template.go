// Package template implements the placeholder substitution used by widget
// templates. Placeholders take the form ${name} where name is a letter or
// underscore followed by letters, digits, or underscores. Lookups are
// literal: there is no nesting, no recursion, and no expression syntax.
package template

import (
	"fmt"
	"strings"
	"unicode"
)

// MissingParameterError reports a placeholder that had no value in the
// parameter set handed to Render. Render fails on the first missing
// parameter and produces no partial output.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("template: missing parameter %q", e.Name)
}

type segment struct {
	text string
	name string
}

// Template is a parsed snippet. Parsing happens once in New; Render only
// walks the segment list, so a Template is safe for concurrent use.
type Template struct {
	raw      string
	segments []segment
	names    []string
}

// New parses raw and rejects malformed placeholders: an unterminated ${,
// an empty ${}, or an invalid identifier. A lone $ not followed by { is
// literal text.
func New(raw string) (*Template, error) {
	t := &Template{raw: raw}
	var text strings.Builder
	seen := make(map[string]struct{})

	for i := 0; i < len(raw); {
		if raw[i] != '$' || i+1 >= len(raw) || raw[i+1] != '{' {
			text.WriteByte(raw[i])
			i++
			continue
		}
		end := strings.IndexByte(raw[i+2:], '}')
		if end < 0 {
			return nil, fmt.Errorf("template: unterminated placeholder at offset %d", i)
		}
		name := raw[i+2 : i+2+end]
		if !validName(name) {
			return nil, fmt.Errorf("template: invalid placeholder %q at offset %d", name, i)
		}
		if text.Len() > 0 {
			t.segments = append(t.segments, segment{text: text.String()})
			text.Reset()
		}
		t.segments = append(t.segments, segment{name: name})
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			t.names = append(t.names, name)
		}
		i += end + 3
	}
	if text.Len() > 0 {
		t.segments = append(t.segments, segment{text: text.String()})
	}
	return t, nil
}

// Must wraps New for package-level template literals.
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

// Render substitutes every placeholder from params. Each occurrence of a
// name receives the same value; a name absent from params aborts with a
// *MissingParameterError.
func (t *Template) Render(params map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(t.raw))
	for _, seg := range t.segments {
		if seg.name == "" {
			out.WriteString(seg.text)
			continue
		}
		value, ok := params[seg.name]
		if !ok {
			return "", &MissingParameterError{Name: seg.name}
		}
		out.WriteString(value)
	}
	return out.String(), nil
}

// Names returns the distinct placeholder names in order of first
// appearance.
func (t *Template) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// String returns the raw template text.
func (t *Template) String() string {
	if t == nil {
		return ""
	}
	return t.raw
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
