package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/yuto-t/kawaraban/internal/domain/news"
)

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(content string) (*gofeed.Feed, error) {
	return gofeed.NewParser().ParseString(content)
}

// Parse converts raw feed content into a news.Feed.
//
// Published falls back to Updated, both for the display string and the
// parsed timestamp. Items whose timestamp cannot be parsed keep a zero
// Date; the date filter drops them later instead of erroring.
func Parse(content []byte, url string) (*news.Feed, error) {
	parsed, err := ParserFunc(string(content))
	if err != nil {
		return nil, err
	}

	f := new(news.Feed{
		Title: parsed.Title,
		URL:   url,
		Items: make([]news.Item, len(parsed.Items)),
	})

	for i, item := range parsed.Items {
		pub := item.Published
		if pub == "" {
			pub = item.Updated
		}
		var date time.Time
		if item.UpdatedParsed != nil {
			date = *item.UpdatedParsed
		} else if item.PublishedParsed != nil {
			date = *item.PublishedParsed
		}

		f.Items[i] = news.Item{
			GUID:        item.GUID,
			Title:       item.Title,
			Link:        item.Link,
			Published:   pub,
			Description: stripHTML(item.Description),
			Content:     stripHTML(item.Content),
			Date:        date,
			FeedTitle:   parsed.Title,
			FeedURL:     url,
		}
	}

	return f, nil
}

// stripHTML removes markup from feed summaries so briefings stay plain text.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
