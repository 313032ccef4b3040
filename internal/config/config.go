package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest"`
	Site     SiteConfig     `mapstructure:"site"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// ManifestConfig controls the manifest fetch/cache layer
type ManifestConfig struct {
	// Source selects where the remote manifest document is fetched from:
	// "http" (Manifest.URL) or "redis" (Redis.ManifestKey).
	Source               string `mapstructure:"source"`
	URL                  string `mapstructure:"url"`
	TTLMs                int    `mapstructure:"ttl_ms"`
	TimeoutMs            int    `mapstructure:"timeout_ms"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// TTL returns the cache validity window as a duration.
func (c ManifestConfig) TTL() time.Duration {
	return time.Duration(c.TTLMs) * time.Millisecond
}

// Timeout returns the bounded fetch/query timeout as a duration.
func (c ManifestConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// SiteConfig holds site-level settings
type SiteConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// ManifestURL resolves the manifest document URL. A relative configured URL is
// made absolute against the site base URL so server-side fetches work too.
func (c Config) ManifestURL() string {
	if strings.HasPrefix(c.Manifest.URL, "http://") || strings.HasPrefix(c.Manifest.URL, "https://") {
		return c.Manifest.URL
	}
	return strings.TrimSuffix(c.Site.BaseURL, "/") + "/" + strings.TrimPrefix(c.Manifest.URL, "/")
}

// StorageConfig holds object storage settings used for image URL construction
type StorageConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Bucket  string `mapstructure:"bucket"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Password    string `mapstructure:"password"`
	Database    int    `mapstructure:"database"`
	ManifestKey string `mapstructure:"manifest_key"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("manifest.source", "http")
	viper.SetDefault("manifest.url", "/static/products-manifest.json")
	// Production deployments raise this; dev and test keep it short.
	viper.SetDefault("manifest.ttl_ms", 300000)
	viper.SetDefault("manifest.timeout_ms", 10000)
	viper.SetDefault("manifest.max_requests_per_second", 5)

	viper.SetDefault("site.base_url", "http://localhost:3000")

	viper.SetDefault("storage.base_url", "https://storage.googleapis.com")
	viper.SetDefault("storage.bucket", "sokohub-product-images")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "sokohub")
	viper.SetDefault("database.user", "sokohub_user")
	viper.SetDefault("database.password", "sokohub_pass")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)
	viper.SetDefault("redis.manifest_key", "sokohub:manifest:latest")
}
