package domain

type CollectionName string

func (c CollectionName) String() string {
	return string(c)
}

const (
	CollectionFeatured    CollectionName = "featured"
	CollectionTrending    CollectionName = "trending"
	CollectionNewArrivals CollectionName = "newArrivals"
	CollectionBestDeals   CollectionName = "bestDeals"
)

var CollectionNames = []CollectionName{
	CollectionFeatured,
	CollectionTrending,
	CollectionNewArrivals,
	CollectionBestDeals,
}

// Collections holds the four curated product id lists, in classification order.
type Collections struct {
	Featured    []string `json:"featured"`
	Trending    []string `json:"trending"`
	NewArrivals []string `json:"newArrivals"`
	BestDeals   []string `json:"bestDeals"`
}

// Get returns the id list for a named collection, nil for an unknown name.
func (c Collections) Get(name CollectionName) []string {
	switch name {
	case CollectionFeatured:
		return c.Featured
	case CollectionTrending:
		return c.Trending
	case CollectionNewArrivals:
		return c.NewArrivals
	case CollectionBestDeals:
		return c.BestDeals
	default:
		return nil
	}
}

// Add appends a product id to a named collection. Unknown names are ignored.
func (c *Collections) Add(name CollectionName, productID string) {
	switch name {
	case CollectionFeatured:
		c.Featured = append(c.Featured, productID)
	case CollectionTrending:
		c.Trending = append(c.Trending, productID)
	case CollectionNewArrivals:
		c.NewArrivals = append(c.NewArrivals, productID)
	case CollectionBestDeals:
		c.BestDeals = append(c.BestDeals, productID)
	}
}
