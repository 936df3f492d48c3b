// Package catalog holds the gallery's static content model: component
// records loaded from the catalog file, the fixed category set, and the
// aggregator that derives per-category counts for page rendering.
package catalog

import "path/filepath"

// Kind describes how a component's source is laid out on disk.
type Kind string

const (
	// KindFile is a single source file.
	KindFile Kind = "file"
	// KindDirectory is a directory holding several files.
	KindDirectory Kind = "directory"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindFile || k == KindDirectory
}

// ComponentRecord is one catalog entry. Records are authored in the catalog
// file and never mutated at runtime.
type ComponentRecord struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"type"`
	// Source overrides the default source location when set.
	Source string `yaml:"source,omitempty"`
}

// SourcePath returns where the record's source lives below componentsDir.
// Single-file records default to <category>/<id>.tsx, directories to
// <category>/<id>.
func (r ComponentRecord) SourcePath(componentsDir string) string {
	if r.Source != "" {
		return r.Source
	}
	if r.Kind == KindDirectory {
		return filepath.Join(componentsDir, r.Category, r.ID)
	}
	return filepath.Join(componentsDir, r.Category, r.ID+".tsx")
}

// CategoryRecord describes a category. Count is derived by Aggregate and is
// never read from storage.
type CategoryRecord struct {
	ID               string
	Name             string
	HasCharts        bool
	ThumbnailClasses string
	Count            int
}
