package providers

import (
	"net"
	"net/http"
	"time"

	"alumnirabatt/internal/structures"
)

// NewHTTPClient returns the client shared by every upstream call. The timeout
// covers the whole exchange including reading the body.
func NewHTTPClient(conf *structures.Config) *http.Client {
	return &http.Client{
		Timeout: conf.Upstream.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: conf.Upstream.MaxIdleConnsPerHost,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}
}
