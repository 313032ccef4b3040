package images

import (
	"fmt"
	"path"
	"strings"

	"sokohub/catalog/internal/config"
	"sokohub/catalog/internal/domain"
)

// PlaceholderID is substituted when an image reference cannot be reduced to a
// usable object filename.
const PlaceholderID = "placeholder.png"

// Variant path prefixes served by the image edge. The edge resizes on demand;
// nothing here touches the network.
const (
	variantOriginal = "original"
	variantThumb    = "w_160"
	variantMobile   = "w_480"
	variantTablet   = "w_768"
	variantDesktop  = "w_1280"
	variantHero     = "w_1920"
)

// Resolver builds the fixed variant URL set for product images out of the
// object storage base URL and bucket name.
type Resolver struct {
	baseURL string
	bucket  string
}

func NewResolver(cfg config.StorageConfig) *Resolver {
	return &Resolver{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		bucket:  cfg.Bucket,
	}
}

// Normalize reduces an image reference to the bare object filename: query
// parameters, fragments and any path or host prefix are stripped. An input
// with nothing usable left normalizes to "".
func Normalize(identifier string) string {
	s := strings.TrimSpace(identifier)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// Resolve maps one image reference to the full named variant set. It never
// fails: an empty or malformed reference yields the placeholder set.
func (r *Resolver) Resolve(identifier string) domain.ImageVariants {
	name := Normalize(identifier)
	if name == "" {
		name = PlaceholderID
	}
	webp := webpName(name)

	return domain.ImageVariants{
		Original:    r.objectURL(variantOriginal, name),
		Mobile:      r.objectURL(variantMobile, name),
		MobileWebP:  r.objectURL(variantMobile, webp),
		Tablet:      r.objectURL(variantTablet, name),
		TabletWebP:  r.objectURL(variantTablet, webp),
		Desktop:     r.objectURL(variantDesktop, name),
		DesktopWebP: r.objectURL(variantDesktop, webp),
		Thumb:       r.objectURL(variantThumb, name),
		ThumbWebP:   r.objectURL(variantThumb, webp),
		Hero:        r.objectURL(variantHero, name),
		HeroWebP:    r.objectURL(variantHero, webp),
	}
}

func (r *Resolver) objectURL(variant, name string) string {
	return fmt.Sprintf("%s/%s/%s/%s", r.baseURL, r.bucket, variant, name)
}

func webpName(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return name + ".webp"
	}
	return strings.TrimSuffix(name, ext) + ".webp"
}
