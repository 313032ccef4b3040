package domain

// Category is one category bucket: the ordered product ids that belong to it
// and the featured subset of that sequence.
type Category struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	ProductIDs []string `json:"product_ids"`
	Featured   []string `json:"featured,omitempty"`
}
