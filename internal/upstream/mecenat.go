package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"alumnirabatt/internal/models"
	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/structures"
)

type MecenatSearcher interface {
	Search(ctx context.Context, query string) (*models.MecenatResponse, error)
}

type MecenatClient struct {
	fetcher   *fetcher
	searchURL string
	pageSize  int
}

func NewMecenatClient(conf *structures.Config, client *http.Client, metrics providers.MetricsProviderInterface, logger providers.Logger) MecenatSearcher {
	return &MecenatClient{
		fetcher: &fetcher{
			client:   client,
			metrics:  metrics,
			logger:   logger,
			provider: ProviderMecenat,
		},
		searchURL: conf.Upstream.MecenatSearch,
		pageSize:  conf.Upstream.MecenatPageSize,
	}
}

// Search queries the alumni site including preview discounts.
func (c *MecenatClient) Search(ctx context.Context, query string) (*models.MecenatResponse, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("mecenat search url: %w", err)
	}
	q := u.Query()
	q.Set("text", query)
	q.Set("site", "alumni")
	q.Set("preview", "true")
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	u.RawQuery = q.Encode()

	var resp models.MecenatResponse
	if err := c.fetcher.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
