package classify

import (
	"testing"
	"time"

	"sokohub/catalog/internal/domain"

	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 {
	return &f
}

func TestClassify_BestDeals(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-90 * 24 * time.Hour)

	tests := []struct {
		name     string
		price    float64
		compare  *float64
		wantDeal bool
	}{
		{"compare-at above price is a deal", 800, ptr(1000), true},
		{"equal compare-at is not a deal", 1000, ptr(1000), false},
		{"compare-at below price is not a deal", 1000, ptr(800), false},
		{"no compare-at is not a deal", 800, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := Classify(Product{
				Price:          tt.price,
				CompareAtPrice: tt.compare,
				CreatedAt:      old,
			}, now)
			require.Equal(t, tt.wantDeal, contains(names, domain.CollectionBestDeals))
		})
	}
}

func TestClassify_NewArrivalsWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		wantNew   bool
	}{
		{"created 29 days ago", now.Add(-29 * 24 * time.Hour), true},
		{"created 31 days ago", now.Add(-31 * 24 * time.Hour), false},
		{"created just now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := Classify(Product{CreatedAt: tt.createdAt}, now)
			require.Equal(t, tt.wantNew, contains(names, domain.CollectionNewArrivals))
		})
	}
}

func TestClassify_Flags(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-90 * 24 * time.Hour)

	names := Classify(Product{
		Featured:       true,
		Trending:       true,
		Price:          500,
		CompareAtPrice: ptr(750),
		CreatedAt:      old,
	}, now)

	require.ElementsMatch(t, []domain.CollectionName{
		domain.CollectionFeatured,
		domain.CollectionTrending,
		domain.CollectionBestDeals,
	}, names)
}

func TestClassify_NothingApplies(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	names := Classify(Product{
		Price:     500,
		CreatedAt: now.Add(-90 * 24 * time.Hour),
	}, now)
	require.Empty(t, names)
}

func contains(names []domain.CollectionName, want domain.CollectionName) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}
