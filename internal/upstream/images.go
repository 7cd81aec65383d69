package upstream

import (
	"context"
	"net/http"

	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/structures"
)

type ImageFetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

type CDNImageFetcher struct {
	fetcher  *fetcher
	maxBytes int64
}

// NewImageFetcher derives its client from the shared one so that every
// redirect hop is held to the logo host allow-list.
func NewImageFetcher(conf *structures.Config, client *http.Client, metrics providers.MetricsProviderInterface, logger providers.Logger) ImageFetcher {
	policy := NewHostPolicy(conf.Logo.AllowedHosts)
	guarded := *client
	guarded.CheckRedirect = policy.CheckRedirect

	return &CDNImageFetcher{
		fetcher: &fetcher{
			client:   &guarded,
			metrics:  metrics,
			logger:   logger,
			provider: ProviderImageCDN,
		},
		maxBytes: conf.Upstream.MaxImageBytes,
	}
}

// Fetch downloads raw image bytes. src must already be validated by the caller.
func (f *CDNImageFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	return f.fetcher.get(ctx, src, "image/*", f.maxBytes)
}
