// Package fetch downloads conference program pages, trying a fixed priority
// list of mirror endpoints until one answers.
package fetch

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// urlPlaceholder marks where the target URL goes in a mirror template. A
// template without the placeholder is treated as a prefix.
const urlPlaceholder = "{url}"

// Fetcher retrieves schedule documents over HTTP. Mirrors are tried in order;
// the first success short-circuits the rest. With no mirrors configured the
// target URL is fetched directly.
type Fetcher struct {
	client  *resty.Client
	mirrors []string
}

// NewFetcher creates a fetcher with the given mirror templates and request
// timeout.
func NewFetcher(mirrors []string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		client:  resty.New().SetTimeout(timeout),
		mirrors: mirrors,
	}
}

// Fetch downloads the document at target, returning its body. When every
// endpoint fails, one aggregated error carrying the last failure is returned
// and nothing is committed.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	endpoints := f.endpoints(target)

	var lastErr error
	for _, endpoint := range endpoints {
		resp, err := f.client.R().SetContext(ctx).Get(endpoint)
		if err != nil {
			lastErr = err
			log.Printf("Fetch failed for %s: %v", endpoint, err)
			continue
		}
		if !resp.IsSuccess() {
			lastErr = fmt.Errorf("endpoint returned status %d", resp.StatusCode())
			log.Printf("Fetch failed for %s: status %d", endpoint, resp.StatusCode())
			continue
		}
		return resp.String(), nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no endpoints configured")
	}
	return "", fmt.Errorf("all %d endpoints failed, last error: %w", len(endpoints), lastErr)
}

// endpoints expands the mirror templates for a target URL.
func (f *Fetcher) endpoints(target string) []string {
	if len(f.mirrors) == 0 {
		return []string{target}
	}

	out := make([]string, 0, len(f.mirrors))
	for _, m := range f.mirrors {
		switch {
		case strings.Contains(m, urlPlaceholder):
			out = append(out, strings.ReplaceAll(m, urlPlaceholder, url.QueryEscape(target)))
		default:
			out = append(out, m+target)
		}
	}
	return out
}
