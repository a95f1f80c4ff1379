// Package store persists user-defined saved filters.
//
// Saved filters are named filter-syntax queries kept in a small YAML file
// next to the config, so a translation the user likes ("overdue | today")
// can be replayed by name.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goslug "github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/natemoore/tix/internal/atomicfile"
)

// SavedFilter is a named filter-syntax query.
type SavedFilter struct {
	Name  string `yaml:"name" json:"name"`
	Query string `yaml:"query" json:"query"`
}

type filtersFile struct {
	Filters []SavedFilter `yaml:"filters"`
}

// Store reads and writes the saved filters file.
type Store struct {
	path string
}

// DefaultPath returns the default saved filters location.
func DefaultPath() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tix", "filters.yaml")
	}
	return filepath.Join(".", "filters.yaml")
}

// New creates a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// NormalizeName converts a user-supplied filter name into its canonical
// slug form ("Morning Review" -> "morning-review").
func NormalizeName(name string) string {
	return goslug.Make(strings.TrimSpace(name))
}

// List returns all saved filters sorted by name. A missing file is an
// empty list, not an error.
func (s *Store) List() ([]SavedFilter, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read saved filters: %w", err)
	}

	var file filtersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse saved filters %s: %w", s.path, err)
	}

	sort.Slice(file.Filters, func(i, j int) bool {
		return file.Filters[i].Name < file.Filters[j].Name
	})
	return file.Filters, nil
}

// Get looks up a saved filter by name (normalized).
func (s *Store) Get(name string) (SavedFilter, bool, error) {
	filters, err := s.List()
	if err != nil {
		return SavedFilter{}, false, err
	}

	slug := NormalizeName(name)
	for _, f := range filters {
		if f.Name == slug {
			return f, true, nil
		}
	}
	return SavedFilter{}, false, nil
}

// Save upserts a filter under the normalized name and returns the stored
// entry.
func (s *Store) Save(name, query string) (SavedFilter, error) {
	slug := NormalizeName(name)
	if slug == "" {
		return SavedFilter{}, fmt.Errorf("filter name is required")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return SavedFilter{}, fmt.Errorf("filter query is required")
	}

	filters, err := s.List()
	if err != nil {
		return SavedFilter{}, err
	}

	entry := SavedFilter{Name: slug, Query: query}
	replaced := false
	for i, f := range filters {
		if f.Name == slug {
			filters[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		filters = append(filters, entry)
	}

	if err := s.write(filters); err != nil {
		return SavedFilter{}, err
	}
	return entry, nil
}

// Remove deletes a saved filter by name. Returns false when nothing with
// that name existed.
func (s *Store) Remove(name string) (bool, error) {
	filters, err := s.List()
	if err != nil {
		return false, err
	}

	slug := NormalizeName(name)
	kept := filters[:0]
	removed := false
	for _, f := range filters {
		if f.Name == slug {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return false, nil
	}

	if err := s.write(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) write(filters []SavedFilter) error {
	sort.Slice(filters, func(i, j int) bool {
		return filters[i].Name < filters[j].Name
	})

	data, err := yaml.Marshal(filtersFile{Filters: filters})
	if err != nil {
		return fmt.Errorf("serialize saved filters: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create filters directory: %w", err)
	}
	if err := atomicfile.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write saved filters: %w", err)
	}
	return nil
}
