// Package generator builds manifest snapshots straight from the primary
// datastore. It is the fallback path behind the remote manifest fetch, and the
// only place a manifest is ever constructed.
package generator

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"sokohub/catalog/internal/classify"
	"sokohub/catalog/internal/domain"
	"sokohub/catalog/internal/images"
	"sokohub/catalog/internal/repository"

	log "github.com/sirupsen/logrus"
)

// ManifestPublisher receives freshly generated manifests. Publishing is best
// effort; a failed publish never fails the generation that produced it.
type ManifestPublisher interface {
	PublishManifest(ctx context.Context, manifest *domain.Manifest) error
}

type Generator struct {
	repository   repository.ProductRepository
	resolver     *images.Resolver
	publisher    ManifestPublisher
	queryTimeout time.Duration
}

// New creates a Generator. publisher may be nil when no manifest store is
// configured.
func New(repo repository.ProductRepository, resolver *images.Resolver, publisher ManifestPublisher, queryTimeout time.Duration) *Generator {
	return &Generator{
		repository:   repo,
		resolver:     resolver,
		publisher:    publisher,
		queryTimeout: queryTimeout,
	}
}

// Generate produces one complete manifest from the datastore, classified
// against the supplied now. A datastore error fails the whole attempt; a
// partial manifest is never returned. Rows without a resolvable image are
// excluded rather than failing generation — that is a data-quality gate, not
// a fault.
func (g *Generator) Generate(ctx context.Context, now time.Time) (*domain.Manifest, error) {
	queryCtx, cancel := context.WithTimeout(ctx, g.queryTimeout)
	defer cancel()

	rows, err := g.repository.ListPublished(queryCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate manifest: %w", err)
	}

	manifest := &domain.Manifest{
		Products:    make(map[string]domain.StaticProduct, len(rows)),
		Categories:  make(map[string]domain.Category),
		LastUpdated: now,
		Version:     now.UnixMilli(),
	}

	skipped := 0
	for _, row := range rows {
		primary, gallery := splitImages(row.Images)
		if primary == "" {
			skipped++
			log.Warnf("Excluding product %s (%s) from manifest: no resolvable image", row.ID, row.Slug)
			continue
		}

		product := domain.StaticProduct{
			ID:             row.ID,
			Name:           row.Name,
			Description:    row.Description,
			Price:          row.Price,
			CompareAtPrice: row.CompareAtPrice,
			Slug:           row.Slug,
			Category: domain.CategoryRef{
				Name: row.CategoryName,
				Slug: row.CategorySlug,
			},
			Image:     g.resolver.Resolve(primary),
			UpdatedAt: row.UpdatedAt,
			ETag:      fingerprint(row),
		}
		for _, identifier := range gallery {
			product.Gallery = append(product.Gallery, g.resolver.Resolve(identifier))
		}
		manifest.Products[row.ID] = product

		for _, name := range classify.Classify(classify.Product{
			Featured:       row.Featured,
			Trending:       row.Trending,
			Price:          row.Price,
			CompareAtPrice: row.CompareAtPrice,
			CreatedAt:      row.CreatedAt,
		}, now) {
			manifest.Collections.Add(name, row.ID)
		}

		if row.CategoryID != "" {
			bucket, ok := manifest.Categories[row.CategoryID]
			if !ok {
				bucket = domain.Category{
					ID:   row.CategoryID,
					Name: row.CategoryName,
					Slug: row.CategorySlug,
				}
			}
			bucket.ProductIDs = append(bucket.ProductIDs, row.ID)
			if row.Featured {
				bucket.Featured = append(bucket.Featured, row.ID)
			}
			manifest.Categories[row.CategoryID] = bucket
		}
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("generated manifest failed validation: %w", err)
	}

	log.Infof("Generated manifest version %d: %d products, %d categories, %d excluded",
		manifest.Version, len(manifest.Products), len(manifest.Categories), skipped)

	if g.publisher != nil {
		if err := g.publisher.PublishManifest(ctx, manifest); err != nil {
			log.Warnf("Failed to publish generated manifest: %v", err)
		}
	}

	return manifest, nil
}

// splitImages picks the first image reference that normalizes to a usable
// filename as the primary and returns the remainder as the gallery.
func splitImages(refs []string) (string, []string) {
	for i, ref := range refs {
		if images.Normalize(ref) != "" {
			return ref, refs[i+1:]
		}
	}
	return "", nil
}

// fingerprint derives the change-detection etag for one row.
func fingerprint(row repository.ProductRow) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%g|%d", row.ID, row.Slug, row.Price, row.UpdatedAt.UnixMilli())
	if row.CompareAtPrice != nil {
		fmt.Fprintf(h, "|%g", *row.CompareAtPrice)
	}
	return fmt.Sprintf("%x", h.Sum64())
}
