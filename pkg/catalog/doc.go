// Package catalog loads the metadata documents that decorate registered
// variants with labels, descriptions, tags, icons, and parameter presets.
// Documents are JSON or YAML; a default catalog covering the built in
// variants ships embedded.
package catalog
