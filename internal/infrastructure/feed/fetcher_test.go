package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <link>https://example.com</link>
    <item>
      <title>First headline</title>
      <link>https://example.com/1</link>
      <pubDate>Thu, 20 Aug 2026 12:00:00 GMT</pubDate>
      <description>&lt;p&gt;Something happened.&lt;/p&gt;</description>
    </item>
  </channel>
</rss>`

func TestFetchStoresValidators(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Last-Modified", "Thu, 20 Aug 2026 12:00:00 GMT")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	cache := NewCache()
	f := NewFetcherWithClient(cache, server.Client(), nil)

	content, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, sampleRSS, string(content))

	entry, ok := cache.Get(server.URL)
	require.True(t, ok)
	require.Equal(t, `"v1"`, entry.ETag)
	require.Equal(t, "Thu, 20 Aug 2026 12:00:00 GMT", entry.LastModified)
	require.Equal(t, int32(1), requests.Load())
}

func TestFetchSendsConditionalHeadersAndReusesCacheOn304(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch requests.Add(1) {
		case 1:
			w.Header().Set("ETag", `"v1"`)
			w.Header().Set("Last-Modified", "Thu, 20 Aug 2026 12:00:00 GMT")
			_, _ = w.Write([]byte(sampleRSS))
		default:
			if r.Header.Get("If-None-Match") != `"v1"` {
				t.Errorf("If-None-Match = %q, want %q", r.Header.Get("If-None-Match"), `"v1"`)
			}
			if r.Header.Get("If-Modified-Since") != "Thu, 20 Aug 2026 12:00:00 GMT" {
				t.Errorf("If-Modified-Since = %q", r.Header.Get("If-Modified-Since"))
			}
			w.WriteHeader(http.StatusNotModified)
		}
	}))
	defer server.Close()

	f := NewFetcherWithClient(NewCache(), server.Client(), nil)

	first, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	second, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, first, second, "304 must return the cached bytes unchanged")
	require.Equal(t, int32(2), requests.Load())
}

func TestFetchReplacesCacheOnChangedContent(t *testing.T) {
	updated := "<rss version=\"2.0\"><channel><title>Updated</title></channel></rss>"
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch requests.Add(1) {
		case 1:
			w.Header().Set("ETag", `"v1"`)
			_, _ = w.Write([]byte(sampleRSS))
		default:
			w.Header().Set("ETag", `"v2"`)
			_, _ = w.Write([]byte(updated))
		}
	}))
	defer server.Close()

	cache := NewCache()
	f := NewFetcherWithClient(cache, server.Client(), nil)

	_, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	content, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, updated, string(content))

	entry, ok := cache.Get(server.URL)
	require.True(t, ok)
	require.Equal(t, `"v2"`, entry.ETag)
}

func TestFetchUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcherWithClient(NewCache(), server.Client(), nil)

	_, err := f.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, server.URL, fetchErr.URL)
	require.Contains(t, err.Error(), "unexpected status 500")
}

func Test304WithoutCacheIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	f := NewFetcherWithClient(NewCache(), server.Client(), nil)

	_, err := f.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no cached content")
}

func TestFetchEmptyURL(t *testing.T) {
	f := NewFetcher(nil)
	_, err := f.Fetch(context.Background(), "   ")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestFetchItemsParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	f := NewFetcherWithClient(NewCache(), server.Client(), nil)

	items, err := f.FetchItems(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "First headline", items[0].Title)
	require.Equal(t, "Example News", items[0].FeedTitle)
	require.Equal(t, server.URL, items[0].FeedURL)
	require.Equal(t, time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC), items[0].Date.UTC())
}

func TestFetchItemsParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not a feed at all"))
	}))
	defer server.Close()

	orig := ParserFunc
	ParserFunc = func(string) (*gofeed.Feed, error) {
		return nil, errors.New("bad feed")
	}
	defer func() { ParserFunc = orig }()

	f := NewFetcherWithClient(NewCache(), server.Client(), nil)

	_, err := f.FetchItems(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
