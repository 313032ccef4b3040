package domain

import "time"

// CategoryRef is the denormalized category a product belongs to.
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ImageVariants is the fixed set of named URLs derived from one image
// identifier. Construction is pure string work; no variant is ever fetched
// or verified here.
type ImageVariants struct {
	Original    string `json:"original"`
	Mobile      string `json:"mobile"`
	MobileWebP  string `json:"mobile_webp"`
	Tablet      string `json:"tablet"`
	TabletWebP  string `json:"tablet_webp"`
	Desktop     string `json:"desktop"`
	DesktopWebP string `json:"desktop_webp"`
	Thumb       string `json:"thumb"`
	ThumbWebP   string `json:"thumb_webp"`
	Hero        string `json:"hero"`
	HeroWebP    string `json:"hero_webp"`
}

// StaticProduct is one catalog entry as served from the manifest snapshot.
type StaticProduct struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          float64         `json:"price"`
	CompareAtPrice *float64        `json:"compare_at_price,omitempty"`
	Slug           string          `json:"slug"`
	Category       CategoryRef     `json:"category"`
	Image          ImageVariants   `json:"image"`
	Gallery        []ImageVariants `json:"gallery,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
	ETag           string          `json:"etag,omitempty"`
}
