package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"alumnirabatt/internal/providers"

	json "github.com/goccy/go-json"
)

const (
	ProviderStudentkortet = "studentkortet"
	ProviderMecenat       = "mecenat"
	ProviderImageCDN      = "image_cdn"

	maxJSONBytes = 4 << 20
)

// ErrBodyTooLarge is returned when an upstream body exceeds the configured cap.
var ErrBodyTooLarge = errors.New("upstream body too large")

// StatusError reports a non-2xx upstream answer.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
}

// fetcher performs instrumented GET requests on behalf of one upstream.
type fetcher struct {
	client   *http.Client
	metrics  providers.MetricsProviderInterface
	logger   providers.Logger
	provider string
}

func (f *fetcher) get(ctx context.Context, rawURL string, accept string, limit int64) ([]byte, error) {
	start := time.Now()
	body, err := f.do(ctx, rawURL, accept, limit)
	f.metrics.ObserveUpstreamDuration(f.provider, time.Since(start))
	if err != nil {
		f.metrics.IncUpstreamErrors(f.provider)
		f.logger.Errorf(providers.TypeUpstream, "%s GET %s failed: %s", f.provider, rawURL, err)
		return nil, err
	}
	f.logger.Debugf(providers.TypeUpstream, "%s GET %s: %d bytes in %s", f.provider, rawURL, len(body), time.Since(start))
	return body, nil
}

func (f *fetcher) do(ctx context.Context, rawURL string, accept string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", f.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%s read body: %w", f.provider, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", f.provider, ErrBodyTooLarge, limit)
	}
	return body, nil
}

func (f *fetcher) getJSON(ctx context.Context, rawURL string, dst any) error {
	body, err := f.get(ctx, rawURL, "application/json", maxJSONBytes)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		f.metrics.IncUpstreamErrors(f.provider)
		f.logger.Errorf(providers.TypeUpstream, "%s decode %s failed: %s", f.provider, rawURL, err)
		return fmt.Errorf("%s decode response: %w", f.provider, err)
	}
	return nil
}
