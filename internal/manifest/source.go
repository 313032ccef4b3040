// Package manifest retrieves catalog manifest snapshots. A Source knows one
// way of producing a manifest; the Cache decorates a primary and a fallback
// Source with TTL memoization, single-flight coalescing and stale fallback.
package manifest

import (
	"context"
	"errors"

	"sokohub/catalog/internal/domain"
)

// ErrManifestUnavailable is returned when no manifest can be served at all:
// the remote fetch failed, regeneration failed, and no previously cached
// snapshot exists. It is the only error this layer ever surfaces to callers;
// check with errors.Is.
var ErrManifestUnavailable = errors.New("manifest unavailable")

type Source interface {
	// Name identifies the source in logs.
	Name() string
	// FetchManifest produces one complete manifest snapshot.
	FetchManifest(ctx context.Context) (*domain.Manifest, error)
}
