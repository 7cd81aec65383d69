package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"alumnirabatt/internal/models"
	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/structures"
)

type StudentkortetSearcher interface {
	Search(ctx context.Context, query string) (*models.StukResponse, error)
}

type StudentkortetClient struct {
	fetcher   *fetcher
	searchURL string
}

func NewStudentkortetClient(conf *structures.Config, client *http.Client, metrics providers.MetricsProviderInterface, logger providers.Logger) StudentkortetSearcher {
	return &StudentkortetClient{
		fetcher: &fetcher{
			client:   client,
			metrics:  metrics,
			logger:   logger,
			provider: ProviderStudentkortet,
		},
		searchURL: conf.Upstream.StudentkortetSearch,
	}
}

// Search queries the partner index.
func (c *StudentkortetClient) Search(ctx context.Context, query string) (*models.StukResponse, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("studentkortet search url: %w", err)
	}
	q := u.Query()
	q.Set("query", query)
	q.Set("indices", "partner")
	u.RawQuery = q.Encode()

	var resp models.StukResponse
	if err := c.fetcher.getJSON(ctx, u.String(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
