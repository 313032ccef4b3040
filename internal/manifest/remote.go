package manifest

import (
	"context"
	"fmt"
	"time"

	"sokohub/catalog/internal/domain"

	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// RemoteSource fetches the published manifest document over HTTP.
type RemoteSource struct {
	rl         ratelimit.Limiter
	url        string
	timeout    time.Duration
	httpClient *resty.Client
}

func NewRemoteSource(url string, timeout time.Duration, maxRequestsPerSecond int) *RemoteSource {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &RemoteSource{
		rl:         ratelimit.New(maxRequestsPerSecond),
		url:        url,
		timeout:    timeout,
		httpClient: client,
	}
}

func (s *RemoteSource) Name() string {
	return "remote"
}

// FetchManifest retrieves and validates the manifest document. Any non-success
// response, timeout or malformed document is reported as a plain error; the
// caller's fallback chain treats them all alike.
func (s *RemoteSource) FetchManifest(ctx context.Context) (*domain.Manifest, error) {
	s.rl.Take()

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var manifest domain.Manifest
	resp, err := s.httpClient.R().
		SetContext(reqCtx).
		SetResult(&manifest).
		Get(s.url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("manifest fetch cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch manifest from %s: %w", s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("manifest endpoint returned HTTP %d %s", resp.StatusCode(), resp.Status())
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("remote manifest document rejected: %w", err)
	}

	return &manifest, nil
}
