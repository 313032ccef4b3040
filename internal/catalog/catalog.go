// Package catalog is the read-only query surface the rest of the application
// uses. Every call consults the manifest cache first, so no caller observes
// data older than one TTL window unless every fresher source has failed.
package catalog

import (
	"context"
	"errors"

	"sokohub/catalog/internal/domain"
	"sokohub/catalog/internal/manifest"
)

// ErrProductNotFound is returned by GetProduct for an unknown slug.
var ErrProductNotFound = errors.New("product not found")

type Catalog struct {
	cache *manifest.Cache
}

func New(cache *manifest.Cache) *Catalog {
	return &Catalog{
		cache: cache,
	}
}

// GetProduct looks a product up by slug.
func (c *Catalog) GetProduct(ctx context.Context, slug string) (*domain.StaticProduct, error) {
	m, err := c.cache.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	product, ok := m.ProductBySlug(slug)
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// GetProductsByIDs resolves ids to products, silently dropping ids no longer
// present. Stale references from an older snapshot are expected, not errors.
func (c *Catalog) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.StaticProduct, error) {
	m, err := c.cache.Manifest(ctx)
	if err != nil {
		return nil, err
	}
	return resolve(m, ids, 0), nil
}

// GetProductsByCategory returns up to limit products of the category, in
// bucket order. An unknown slug yields an empty result. limit <= 0 means all.
func (c *Catalog) GetProductsByCategory(ctx context.Context, categorySlug string, limit int) ([]domain.StaticProduct, error) {
	m, err := c.cache.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	category, ok := m.CategoryBySlug(categorySlug)
	if !ok {
		return nil, nil
	}
	return resolve(m, category.ProductIDs, limit), nil
}

// GetCollection returns up to limit products of the named collection.
func (c *Catalog) GetCollection(ctx context.Context, name domain.CollectionName, limit int) ([]domain.StaticProduct, error) {
	m, err := c.cache.Manifest(ctx)
	if err != nil {
		return nil, err
	}
	return resolve(m, m.Collections.Get(name), limit), nil
}

func resolve(m *domain.Manifest, ids []string, limit int) []domain.StaticProduct {
	products := make([]domain.StaticProduct, 0, len(ids))
	for _, id := range ids {
		if limit > 0 && len(products) == limit {
			break
		}
		if product, ok := m.Products[id]; ok {
			products = append(products, product)
		}
	}
	return products
}
