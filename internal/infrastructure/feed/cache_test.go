package feed

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCachePutGet(t *testing.T) {
	c := NewCache()

	_, ok := c.Get("https://example.com/rss")
	require.False(t, ok)

	entry := Entry{
		Content:      []byte("<rss/>"),
		ETag:         `"v1"`,
		LastModified: "Thu, 20 Aug 2026 12:00:00 GMT",
		FetchedAt:    time.Now(),
	}
	c.Put("https://example.com/rss", entry)

	got, ok := c.Get("https://example.com/rss")
	require.True(t, ok)
	require.Equal(t, entry.Content, got.Content)
	require.Equal(t, entry.ETag, got.ETag)
	require.Equal(t, 1, c.Len())
}

func TestCachePutOverwrites(t *testing.T) {
	c := NewCache()
	c.Put("url", Entry{ETag: `"v1"`})
	c.Put("url", Entry{ETag: `"v2"`})

	got, ok := c.Get("url")
	require.True(t, ok)
	require.Equal(t, `"v2"`, got.ETag)
	require.Equal(t, 1, c.Len())
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url := fmt.Sprintf("https://example.com/%d", i%4)
			c.Put(url, Entry{ETag: fmt.Sprintf(`"v%d"`, i)})
			_, _ = c.Get(url)
		}()
	}
	wg.Wait()

	require.Equal(t, 4, c.Len())
}
