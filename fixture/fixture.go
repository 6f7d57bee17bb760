// Package fixture defines the conformance-fixture catalog: minimal EPUB
// source trees, each carrying exactly one deliberate defect, plus the
// valid baselines they derive from.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Fixture categories, mirrored in the output directory layout.
const (
	CategoryValid   = "valid"
	CategoryInvalid = "invalid"
)

// FileSet maps archive-relative slash paths to file content.
type FileSet map[string][]byte

// Paths returns the set's paths in sorted order.
func (fs FileSet) Paths() []string {
	paths := make([]string, 0, len(fs))
	for p := range fs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Base selects the tree a fixture starts from.
type Base int

const (
	// BaseNone starts from an empty tree; Overrides carry every file.
	BaseNone Base = iota
	// BaseEPUB3 starts from the minimal EPUB 3 tree.
	BaseEPUB3
	// BaseEPUB2 starts from the minimal EPUB 2 tree.
	BaseEPUB2
)

// Fixture is one catalog entry: a named source tree with exactly one
// deliberate defect, or none for the valid baselines.
type Fixture struct {
	Name     string
	Category string
	Base     Base

	// Overrides replace or add files on top of the base tree.
	Overrides FileSet
	// Remove drops base files, e.g. the EPUB 3 nav from an EPUB 2 tree.
	Remove []string
	// ArchiveOnly marks fixtures built directly as defective archives;
	// they have no source tree and are skipped by tree generation.
	ArchiveOnly bool
}

// Files materializes the fixture's source tree content.
func (f *Fixture) Files() FileSet {
	var files FileSet
	switch f.Base {
	case BaseEPUB3:
		files = baseEPUB3(f.Name)
	case BaseEPUB2:
		files = baseEPUB2(f.Name)
	default:
		files = FileSet{}
	}
	for p, content := range f.Overrides {
		files[p] = content
	}
	for _, p := range f.Remove {
		delete(files, p)
	}
	return files
}

// WriteTree writes the fixture's source tree under root, fully replacing
// any previous tree at the same path.
func (f *Fixture) WriteTree(root string) error {
	dir := filepath.Join(root, f.Category, f.Name)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove previous tree: %w", err)
	}

	files := f.Files()
	for _, rel := range files.Paths() {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, files[rel], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
