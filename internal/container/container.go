package container

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"sokohub/catalog/internal/catalog"
	"sokohub/catalog/internal/config"
	"sokohub/catalog/internal/domain"
	"sokohub/catalog/internal/generator"
	"sokohub/catalog/internal/images"
	"sokohub/catalog/internal/manifest"
	"sokohub/catalog/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Repository repository.ProductRepository
	Generator  *generator.Generator
	Cache      *manifest.Cache
	Catalog    *catalog.Catalog

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	db, err := pgxpool.New(context.Background(),
		fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
		))
	if err != nil {
		return nil, err
	}
	container.db = db

	productRepo := repository.NewProductRepository(db)
	container.Repository = productRepo

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	var store *manifest.RedisStore
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		if cfg.Manifest.Source == "redis" {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		// The redis store is only an optional publish target here; run without it.
		log.Warnf("Redis unreachable, manifest publishing disabled: %v", err)
		rdb.Close()
	} else {
		log.Info("✅ Connected to Redis successfully")
		container.redis = rdb
		store = manifest.NewRedisStore(rdb, cfg.Redis.ManifestKey)
	}

	resolver := images.NewResolver(cfg.Storage)
	var publisher generator.ManifestPublisher
	if store != nil {
		publisher = store
	}
	gen := generator.New(productRepo, resolver, publisher, cfg.Manifest.Timeout())
	container.Generator = gen

	var primary manifest.Source
	switch cfg.Manifest.Source {
	case "redis":
		primary = store
	case "http":
		primary = manifest.NewRemoteSource(cfg.ManifestURL(), cfg.Manifest.Timeout(), cfg.Manifest.MaxRequestsPerSecond)
	default:
		return nil, fmt.Errorf("unknown manifest source %q", cfg.Manifest.Source)
	}
	fallback := manifest.NewGenerateSource(gen, nil)

	cache := manifest.NewCache(primary, fallback, cfg.Manifest.TTL(), nil)
	container.Cache = cache
	container.Catalog = catalog.New(cache)

	return container, nil
}

// Run warms the manifest cache and reports what the catalog will serve.
func (c *Container) Run(ctx context.Context) error {
	m, err := c.Cache.Manifest(ctx)
	if err != nil {
		return fmt.Errorf("failed to warm manifest cache: %w", err)
	}

	log.Infof("✅ Manifest version %d loaded: %d products, %d categories",
		m.Version, len(m.Products), len(m.Categories))

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range domain.CollectionNames {
		name := name
		g.Go(func() error {
			products, err := c.Catalog.GetCollection(ctx, name, 0)
			if err != nil {
				return fmt.Errorf("failed to load collection %s: %w", name, err)
			}
			log.Infof("Collection %s: %d products", name, len(products))
			return nil
		})
	}
	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	c.db.Close()
	if c.redis != nil {
		c.redis.Close()
	}

	log.Info("Container shut down successfully")
	return nil
}
