package images

import (
	"strings"
	"testing"

	"sokohub/catalog/internal/config"
	"sokohub/catalog/internal/domain"

	"github.com/stretchr/testify/require"
)

func testResolver() *Resolver {
	return NewResolver(config.StorageConfig{
		BaseURL: "https://cdn.example.com/",
		Bucket:  "products",
	})
}

func allVariantURLs(v domain.ImageVariants) []string {
	return []string{
		v.Original,
		v.Mobile, v.MobileWebP,
		v.Tablet, v.TabletWebP,
		v.Desktop, v.DesktopWebP,
		v.Thumb, v.ThumbWebP,
		v.Hero, v.HeroWebP,
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{"full url with query", "https://host/bucket/path/abc123.png?token=xyz", "abc123.png"},
		{"path prefix only", "uploads/2026/abc.jpg", "abc.jpg"},
		{"bare filename", "abc.jpg", "abc.jpg"},
		{"fragment stripped", "abc.jpg#section", "abc.jpg"},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"url ending in slash", "https://host/bucket/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.identifier))
		})
	}
}

func TestResolve_StripsQueryParameters(t *testing.T) {
	variants := testResolver().Resolve("https://host/bucket/path/abc123.png?token=xyz")

	for _, url := range allVariantURLs(variants) {
		require.NotContains(t, url, "?")
		require.NotContains(t, url, "token")
	}
	require.Equal(t, "https://cdn.example.com/products/original/abc123.png", variants.Original)
	require.Equal(t, "https://cdn.example.com/products/w_480/abc123.png", variants.Mobile)
	require.Equal(t, "https://cdn.example.com/products/w_480/abc123.webp", variants.MobileWebP)
}

func TestResolve_EmptyIdentifierYieldsPlaceholder(t *testing.T) {
	for _, identifier := range []string{"", "   ", "https://host/path/?only=query"} {
		variants := testResolver().Resolve(identifier)
		for _, url := range allVariantURLs(variants) {
			require.NotEmpty(t, url)
			require.True(t, strings.Contains(url, "placeholder"), "expected placeholder in %s", url)
		}
	}
}

func TestResolve_WebPCounterparts(t *testing.T) {
	variants := testResolver().Resolve("photo.jpeg")

	require.True(t, strings.HasSuffix(variants.MobileWebP, "photo.webp"))
	require.True(t, strings.HasSuffix(variants.HeroWebP, "photo.webp"))
	require.True(t, strings.HasSuffix(variants.Original, "photo.jpeg"))

	// extensionless identifiers still get a coherent webp name
	noExt := testResolver().Resolve("photo")
	require.True(t, strings.HasSuffix(noExt.ThumbWebP, "photo.webp"))
}
