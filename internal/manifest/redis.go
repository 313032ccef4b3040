package manifest

import (
	"context"
	"encoding/json"
	"fmt"

	"sokohub/catalog/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore serves the manifest document out of a Redis key instead of an
// HTTP endpoint, for deployments where the generating process publishes it
// there. It doubles as the generator's publish target.
type RedisStore struct {
	redisClient *redis.Client
	key         string
}

func NewRedisStore(redisClient *redis.Client, key string) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		key:         key,
	}
}

func (s *RedisStore) Name() string {
	return "redis"
}

func (s *RedisStore) FetchManifest(ctx context.Context) (*domain.Manifest, error) {
	val, err := s.redisClient.Get(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("no manifest document at key %s", s.key)
		}
		return nil, fmt.Errorf("failed to fetch manifest from redis: %w", err)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal([]byte(val), &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest document: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("stored manifest document rejected: %w", err)
	}

	return &manifest, nil
}

// PublishManifest stores the manifest document without expiry; each publish
// replaces the previous document wholesale.
func (s *RedisStore) PublishManifest(ctx context.Context, manifest *domain.Manifest) error {
	payload, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode manifest document: %w", err)
	}

	if err := s.redisClient.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to publish manifest to key %s: %w", s.key, err)
	}
	return nil
}
