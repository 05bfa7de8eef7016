package catalog

import (
	"sort"
	"strings"
)

// Store keeps the parsed entries from catalog documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	entries map[string]Entry
}

// Entry decorates a registered variant with display metadata and optional
// parameter presets applied before caller overrides.
type Entry struct {
	Variant     string         `json:"variant" yaml:"variant" validate:"required,variant_name"`
	Label       string         `json:"label" yaml:"label" validate:"required"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty" validate:"omitempty,dive,required"`
	Icon        string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Params      map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	Source      string         `json:"-" yaml:"-"`
}

// Clone returns a copy safe to mutate.
func (e Entry) Clone() Entry {
	out := e
	if len(e.Tags) > 0 {
		out.Tags = append([]string(nil), e.Tags...)
	}
	if len(e.Params) > 0 {
		out.Params = make(map[string]any, len(e.Params))
		for key, value := range e.Params {
			out.Params[key] = value
		}
	}
	return out
}

// Entry returns the catalog entry for the supplied variant name.
func (s *Store) Entry(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[normalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	return entry.Clone(), true
}

// Names returns the catalogued variant names in sorted order.
func (s *Store) Names() []string {
	if s == nil || len(s.entries) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any entries.
func (s *Store) Empty() bool {
	return s == nil || len(s.entries) == 0
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
