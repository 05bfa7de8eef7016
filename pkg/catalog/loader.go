package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML catalog files.
// When fsys is nil or no documents are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{entries: make(map[string]Entry)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Variants {
			normalized := normalizeName(name)
			if normalized == "" {
				return fmt.Errorf("catalog: file %s defines an empty variant name", path)
			}
			if _, exists := store.entries[normalized]; exists {
				return fmt.Errorf("catalog: duplicate variant %q (file %s)", normalized, path)
			}

			parsed, err := normalizeEntry(raw, normalized, path)
			if err != nil {
				return err
			}
			store.entries[normalized] = parsed
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Default loads the embedded catalog covering the built in variants.
func Default() (*Store, error) {
	return LoadFS(EmbeddedFS())
}

type documentFile struct {
	Variants map[string]entryFile `json:"variants" yaml:"variants"`
}

type entryFile struct {
	Label       string         `json:"label" yaml:"label"`
	Description string         `json:"description" yaml:"description"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Icon        string         `json:"icon" yaml:"icon"`
	Params      map[string]any `json:"params" yaml:"params"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func normalizeEntry(raw entryFile, name, source string) (Entry, error) {
	entry := Entry{
		Variant:     name,
		Label:       strings.TrimSpace(raw.Label),
		Description: strings.TrimSpace(raw.Description),
		Tags:        normalizeTags(raw.Tags),
		Icon:        sanitizeIconMarkup(raw.Icon),
		Source:      source,
	}

	if len(raw.Params) > 0 {
		entry.Params = make(map[string]any, len(raw.Params))
		for key, value := range raw.Params {
			trimmed := strings.TrimSpace(key)
			if trimmed == "" {
				return Entry{}, fmt.Errorf("catalog: file %s variant %q has an empty parameter name", source, name)
			}
			entry.Params[trimmed] = value
		}
	}

	if err := validateEntry(entry); err != nil {
		return Entry{}, fmt.Errorf("catalog: file %s variant %q: %w", source, name, err)
	}
	return entry, nil
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = strings.TrimSpace(tag)
	}
	return out
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
