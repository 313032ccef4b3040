package manifest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sokohub/catalog/internal/domain"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes one manifest snapshot for a TTL window. When the window
// lapses it tries the primary source, then the fallback, and finally keeps
// serving the previous snapshot if both fail. Only when no snapshot has ever
// been produced does an error reach the caller.
//
// Each Cache is an independent instance; construct one per data source pair
// so tests can run several side by side.
type Cache struct {
	primary  Source
	fallback Source
	ttl      time.Duration
	clk      clock.Clock

	group singleflight.Group

	mu        sync.RWMutex
	manifest  *domain.Manifest
	fetchedAt time.Time
}

// NewCache creates a Cache over a primary and a fallback source. clk may be
// nil, in which case the wall clock is used.
func NewCache(primary, fallback Source, ttl time.Duration, clk clock.Clock) *Cache {
	if clk == nil {
		clk = clock.New()
	}
	return &Cache{
		primary:  primary,
		fallback: fallback,
		ttl:      ttl,
		clk:      clk,
	}
}

// Manifest returns the current snapshot, fetching or regenerating it first if
// the cached one has expired. Concurrent callers during a refresh converge on
// a single in-flight fetch and all receive its result.
func (c *Cache) Manifest(ctx context.Context) (*domain.Manifest, error) {
	if m, ok := c.valid(); ok {
		return m, nil
	}

	result, err, _ := c.group.Do("manifest", func() (interface{}, error) {
		// A flight that completed while we queued may have refreshed already.
		if m, ok := c.valid(); ok {
			return m, nil
		}
		return c.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Manifest), nil
}

// Version reports the version of the cached snapshot, 0 when empty. It never
// triggers a fetch.
func (c *Cache) Version() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.manifest == nil {
		return 0
	}
	return c.manifest.Version
}

func (c *Cache) valid() (*domain.Manifest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.manifest == nil {
		return nil, false
	}
	if c.clk.Since(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.manifest, true
}

func (c *Cache) refresh(ctx context.Context) (*domain.Manifest, error) {
	m, err := c.primary.FetchManifest(ctx)
	if err != nil {
		log.Warnf("Manifest fetch from %s source failed, falling back to %s: %v",
			c.primary.Name(), c.fallback.Name(), err)
		m, err = c.fallback.FetchManifest(ctx)
	}

	if err != nil {
		c.mu.RLock()
		stale := c.manifest
		c.mu.RUnlock()
		if stale != nil {
			// Stale data beats an outage on this read path. fetchedAt is left
			// untouched so the next caller retries the sources.
			log.Warnf("Manifest regeneration failed, serving stale version %d: %v", stale.Version, err)
			return stale, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrManifestUnavailable, err)
	}

	c.mu.Lock()
	c.manifest = m
	c.fetchedAt = c.clk.Now()
	c.mu.Unlock()

	log.Debugf("Manifest cache refreshed to version %d (%d products)", m.Version, len(m.Products))
	return m, nil
}
