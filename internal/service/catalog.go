package service

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vilaca/release-dashboard/internal/domain"
)

// Catalog is the on-disk description of tracked repositories and releases.
type Catalog struct {
	Repositories []domain.Repository `yaml:"repositories"`
	Releases     []domain.Release    `yaml:"releases"`
}

// Validate checks that repository names are unique and that every release
// points at a known repository.
func (c *Catalog) Validate() error {
	names := make(map[string]struct{}, len(c.Repositories))
	for _, repo := range c.Repositories {
		if repo.Name == "" {
			return errors.New("repository without name")
		}
		if _, dup := names[repo.Name]; dup {
			return fmt.Errorf("duplicate repository %q", repo.Name)
		}
		names[repo.Name] = struct{}{}
	}

	versions := make(map[string]struct{}, len(c.Releases))
	for _, rel := range c.Releases {
		if rel.Version == "" {
			return errors.New("release without version")
		}
		if _, dup := versions[rel.Version]; dup {
			return fmt.Errorf("duplicate release %q", rel.Version)
		}
		versions[rel.Version] = struct{}{}
		if _, ok := names[rel.Repository]; !ok {
			return fmt.Errorf("release %q: unknown repository %q", rel.Version, rel.Repository)
		}
	}
	return nil
}

// CatalogFile loads the release catalog from a YAML file.
// Follows Single Responsibility Principle - only handles reading the file.
type CatalogFile struct {
	filePath string
	logger   Logger
}

// NewCatalogFile creates a catalog reader for filePath.
func NewCatalogFile(filePath string, logger Logger) *CatalogFile {
	return &CatalogFile{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads and validates the catalog.
// A missing file yields an empty catalog.
func (f *CatalogFile) Load() (*Catalog, error) {
	data, err := os.ReadFile(f.filePath)
	if errors.Is(err, os.ErrNotExist) {
		f.logger.Printf("Catalog: no catalog file found at %s", f.filePath)
		return &Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", f.filePath, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", f.filePath, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", f.filePath, err)
	}

	f.logger.Printf("Catalog: loaded %s (repositories: %d, releases: %d)",
		f.filePath, len(catalog.Repositories), len(catalog.Releases))
	return &catalog, nil
}
