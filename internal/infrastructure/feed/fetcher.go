// Package feed fetches RSS/Atom feeds over HTTP with conditional-request
// caching and parses them into news items.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yuto-t/kawaraban/internal/domain/news"
)

const (
	feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
	userAgent        = "Kawaraban/1.0"
	defaultTimeout   = 10 * time.Second

	// maxFeedBody caps how much of a feed response is read.
	maxFeedBody = 10 << 20
)

// FetchError reports a failed feed retrieval, carrying the URL and cause.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", userAgent)
	}
	return base.RoundTrip(clone)
}

// Fetcher retrieves feed content over HTTP, reusing cached content when the
// upstream resource is unchanged.
type Fetcher struct {
	client *http.Client
	cache  *Cache
	now    func() time.Time
}

// NewFetcher creates a Fetcher backed by the given cache.
func NewFetcher(cache *Cache) *Fetcher {
	if cache == nil {
		cache = NewCache()
	}
	return new(Fetcher{
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: acceptTransport{base: http.DefaultTransport},
		},
		cache: cache,
		now:   time.Now,
	})
}

// NewFetcherWithClient creates a Fetcher with a custom HTTP client for tests.
func NewFetcherWithClient(cache *Cache, client *http.Client, now func() time.Time) *Fetcher {
	f := NewFetcher(cache)
	if client != nil {
		f.client = client
	}
	if now != nil {
		f.now = now
	}
	return f
}

// Fetch returns the raw feed content for url.
//
// When a cache entry exists, the request carries If-None-Match and
// If-Modified-Since built from the stored validators. A 304 response
// returns the cached bytes unchanged. A 2xx response replaces the cache
// entry with the new content and validators. Anything else is a FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &FetchError{URL: url, Err: errors.New("feed url is empty")}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	cached, hasCached := f.cache.Get(url)
	if hasCached {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotModified {
		if !hasCached {
			return nil, &FetchError{URL: url, Err: errors.New("server returned 304 but no cached content exists")}
		}
		return cached.Content, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	f.cache.Put(url, Entry{
		Content:      content,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
		FetchedAt:    f.now(),
	})

	return content, nil
}

// FetchItems fetches and parses one feed. It implements the briefing
// service's fetcher port.
func (f *Fetcher) FetchItems(ctx context.Context, url string) ([]news.Item, error) {
	content, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	parsed, err := Parse(content, url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	return parsed.Items, nil
}
