package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRow is one published catalog row as read from the primary datastore,
// with the joined category already normalized to a single value.
type ProductRow struct {
	ID             string
	Name           string
	Description    string
	Price          float64
	CompareAtPrice *float64
	Slug           string
	Images         []string
	Featured       bool
	Trending       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CategoryID     string
	CategoryName   string
	CategorySlug   string
}

type ProductRepository interface {
	// ListPublished returns every product visible to the storefront, newest
	// first. Category ordering inside the manifest follows this order.
	ListPublished(ctx context.Context) ([]ProductRow, error)
}

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) ListPublished(ctx context.Context) ([]ProductRow, error) {
	query := `
	SELECT p.id, p.name, COALESCE(p.description, ''), p.price, p.compare_at_price,
	       p.slug, COALESCE(p.images, '{}'), p.featured, p.trending,
	       p.created_at, p.updated_at,
	       COALESCE(
	           json_agg(json_build_object('id', c.id, 'name', c.name, 'slug', c.slug))
	               FILTER (WHERE c.id IS NOT NULL),
	           '[]'
	       ) AS category
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	WHERE p.published = true
	GROUP BY p.id
	ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query published products: %w", err)
	}
	defer rows.Close()

	var products []ProductRow
	for rows.Next() {
		var row ProductRow
		var rawCategory []byte

		err := rows.Scan(
			&row.ID, &row.Name, &row.Description, &row.Price, &row.CompareAtPrice,
			&row.Slug, &row.Images, &row.Featured, &row.Trending,
			&row.CreatedAt, &row.UpdatedAt, &rawCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		if category, ok := normalizeCategory(rawCategory); ok {
			row.CategoryID = category.ID
			row.CategoryName = category.Name
			row.CategorySlug = category.Slug
		}

		products = append(products, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read published products: %w", err)
	}

	return products, nil
}
