// Package content serves the static site catalog baked into the binary.
package content

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"sync"

	"europlast-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogRepository struct {
	data []byte

	once    sync.Once
	catalog *domain.Catalog
	err     error
}

// NewCatalogRepository returns a repository over data, or over the embedded
// catalog when data is nil. Parsing happens on first Load.
func NewCatalogRepository(data []byte) domain.CatalogRepository {
	if data == nil {
		data = embeddedCatalog
	}
	return &catalogRepository{data: data}
}

// Load returns the shared catalog. Callers must not modify it.
func (r *catalogRepository) Load(_ context.Context) (*domain.Catalog, error) {
	r.once.Do(func() {
		r.catalog, r.err = Parse(r.data)
	})
	return r.catalog, r.err
}

// Parse decodes a catalog document, rejecting unknown keys.
func Parse(data []byte) (*domain.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c domain.Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := check(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func check(c *domain.Catalog) error {
	categories := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		categories[cat.ID] = true
	}

	ids := make(map[int]bool, len(c.Products))
	for _, p := range c.Products {
		if ids[p.ID] {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		ids[p.ID] = true
		if !categories[p.Category] {
			return fmt.Errorf("product %d has unknown category %q", p.ID, p.Category)
		}
	}
	return nil
}
