package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

var ErrInvalidImageURL = errors.New("invalid image URL")

// maxRedirects matches the net/http default.
const maxRedirects = 10

// HostPolicy restricts image fetches to absolute http(s) URLs on allow-listed hosts.
type HostPolicy struct {
	allowed map[string]struct{}
}

func NewHostPolicy(hosts []string) *HostPolicy {
	allowed := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		allowed[strings.ToLower(h)] = struct{}{}
	}
	return &HostPolicy{allowed: allowed}
}

// Check reports ErrInvalidImageURL, wrapped with the reason, when u may not be fetched.
func (p *HostPolicy) Check(u *url.URL) error {
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidImageURL, u.String())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q not allowed", ErrInvalidImageURL, u.Scheme)
	}
	if _, ok := p.allowed[strings.ToLower(u.Hostname())]; !ok {
		return fmt.Errorf("%w: host %q not allowed", ErrInvalidImageURL, u.Hostname())
	}
	return nil
}

// CheckString parses src and applies Check.
func (p *HostPolicy) CheckString(src string) error {
	u, err := url.Parse(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImageURL, err)
	}
	return p.Check(u)
}

// CheckRedirect applies the policy to every hop of a redirect chain.
func (p *HostPolicy) CheckRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if err := p.Check(req.URL); err != nil {
		return fmt.Errorf("redirect: %w", err)
	}
	return nil
}
