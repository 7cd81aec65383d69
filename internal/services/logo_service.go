package services

import (
	"context"
	"fmt"
	"time"

	"alumnirabatt/internal/imageproc"
	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/structures"
	"alumnirabatt/internal/upstream"
)

// ErrInvalidImageURL is returned for sources, or redirect targets, outside the allow-list.
var ErrInvalidImageURL = upstream.ErrInvalidImageURL

type LogoServiceInterface interface {
	Render(ctx context.Context, src string, dark bool) ([]byte, error)
}

type LogoService struct {
	fetcher   upstream.ImageFetcher
	policy    *upstream.HostPolicy
	maxPixels int
	metrics   providers.MetricsProviderInterface
	logger    providers.Logger
}

func NewLogoService(conf *structures.Config, fetcher upstream.ImageFetcher, metrics providers.MetricsProviderInterface, logger providers.Logger) LogoServiceInterface {
	return &LogoService{
		fetcher:   fetcher,
		policy:    upstream.NewHostPolicy(conf.Logo.AllowedHosts),
		maxPixels: conf.Logo.MaxPixels,
		metrics:   metrics,
		logger:    logger,
	}
}

// ValidateImageURL accepts only absolute http(s) URLs whose host is allow-listed.
func (s *LogoService) ValidateImageURL(src string) error {
	return s.policy.CheckString(src)
}

// Render fetches an allow-listed logo and returns it recolored as PNG.
func (s *LogoService) Render(ctx context.Context, src string, dark bool) ([]byte, error) {
	if err := s.ValidateImageURL(src); err != nil {
		s.logger.Warnf(providers.TypeLogo, "rejected logo %q: %s", src, err)
		return nil, err
	}

	data, err := s.fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetch logo: %w", err)
	}

	start := time.Now()
	out, err := imageproc.Recolor(data, dark, s.maxPixels)
	if err != nil {
		s.logger.Errorf(providers.TypeLogo, "recolor %q (dark=%t) failed: %s", src, dark, err)
		return nil, fmt.Errorf("recolor logo: %w", err)
	}
	elapsed := time.Since(start)
	s.metrics.ObserveLogoRender(dark, elapsed)
	s.logger.Debugf(providers.TypeLogo, "rendered %q (dark=%t): %d bytes in %s", src, dark, len(out), elapsed)
	return out, nil
}
