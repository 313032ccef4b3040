// Package classify sorts products into display collections. Classification is
// a pure function of the product fields and an explicit "now", so it can run
// identically inside the generator and in isolation under test.
package classify

import (
	"time"

	"sokohub/catalog/internal/domain"
)

// NewArrivalWindow is the rolling window, ending at "now", within which a
// product counts as a new arrival.
const NewArrivalWindow = 30 * 24 * time.Hour

// Product carries the fields classification looks at.
type Product struct {
	Featured       bool
	Trending       bool
	Price          float64
	CompareAtPrice *float64
	CreatedAt      time.Time
}

// Classify returns the collections the product belongs to. Deal membership
// requires a compare-at price strictly greater than the price; equal prices
// are not a deal.
func Classify(p Product, now time.Time) []domain.CollectionName {
	var names []domain.CollectionName

	if p.Featured {
		names = append(names, domain.CollectionFeatured)
	}
	if p.Trending {
		names = append(names, domain.CollectionTrending)
	}
	if p.CompareAtPrice != nil && *p.CompareAtPrice > p.Price {
		names = append(names, domain.CollectionBestDeals)
	}
	if now.Sub(p.CreatedAt) <= NewArrivalWindow {
		names = append(names, domain.CollectionNewArrivals)
	}

	return names
}
