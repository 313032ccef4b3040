package domain

import (
	"fmt"
	"time"
)

// Manifest is the versioned aggregate snapshot of the catalog. It is built
// wholesale by one generator pass and never mutated afterwards, so any number
// of concurrent readers may share one instance.
type Manifest struct {
	Products    map[string]StaticProduct `json:"products"`
	Categories  map[string]Category      `json:"categories"`
	Collections Collections              `json:"collections"`
	LastUpdated time.Time                `json:"last_updated"`
	Version     int64                    `json:"version"`
}

// Validate checks the referential invariant: every product id referenced by a
// category bucket or a collection must exist as a key in Products.
func (m *Manifest) Validate() error {
	if m.Products == nil {
		return fmt.Errorf("manifest has no products map")
	}
	for id, category := range m.Categories {
		for _, productID := range category.ProductIDs {
			if _, ok := m.Products[productID]; !ok {
				return fmt.Errorf("category %s references unknown product %s", id, productID)
			}
		}
		for _, productID := range category.Featured {
			if _, ok := m.Products[productID]; !ok {
				return fmt.Errorf("category %s features unknown product %s", id, productID)
			}
		}
	}
	for _, name := range CollectionNames {
		for _, productID := range m.Collections.Get(name) {
			if _, ok := m.Products[productID]; !ok {
				return fmt.Errorf("collection %s references unknown product %s", name, productID)
			}
		}
	}
	return nil
}

// ProductBySlug scans for the product with the given slug.
func (m *Manifest) ProductBySlug(slug string) (StaticProduct, bool) {
	for _, p := range m.Products {
		if p.Slug == slug {
			return p, true
		}
	}
	return StaticProduct{}, false
}

// CategoryBySlug scans for the category bucket with the given slug.
func (m *Manifest) CategoryBySlug(slug string) (Category, bool) {
	for _, c := range m.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}
