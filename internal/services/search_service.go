package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"alumnirabatt/internal/discount"
	"alumnirabatt/internal/models"
	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/structures"
	"alumnirabatt/internal/upstream"

	"golang.org/x/sync/errgroup"
)

// MinQueryLength is the shortest trimmed query, in characters, that reaches the upstreams.
const MinQueryLength = 2

type SearchServiceInterface interface {
	Search(ctx context.Context, query string) (*models.SearchResponse, error)
}

type SearchService struct {
	stuk    upstream.StudentkortetSearcher
	mecenat upstream.MecenatSearcher
	sites   discount.Sites
	logger  providers.Logger
}

func NewSearchService(conf *structures.Config, stuk upstream.StudentkortetSearcher, mecenat upstream.MecenatSearcher, logger providers.Logger) SearchServiceInterface {
	return &SearchService{
		stuk:    stuk,
		mecenat: mecenat,
		sites: discount.Sites{
			Studentkortet: conf.Upstream.StudentkortetSite,
			Mecenat:       conf.Upstream.MecenatSite,
		},
		logger: logger,
	}
}

// Search queries both providers concurrently and returns the merged, ranked list.
// Either provider failing fails the whole search.
func (s *SearchService) Search(ctx context.Context, query string) (*models.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return models.EmptySearchResponse(), nil
	}

	start := time.Now()
	var (
		stukResp    *models.StukResponse
		mecenatResp *models.MecenatResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.stuk.Search(gctx, query)
		stukResp = resp
		return err
	})
	g.Go(func() error {
		resp, err := s.mecenat.Search(gctx, query)
		mecenatResp = resp
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Errorf(providers.TypeSearch, "search %q failed: %s", query, err)
		return nil, err
	}

	results := discount.Merge(stukResp, mecenatResp, s.sites)
	discount.Rank(results, query)

	s.logger.Infof(providers.TypeSearch, "search %q: %d results in %s", query, len(results), time.Since(start))
	return &models.SearchResponse{Results: results}, nil
}
