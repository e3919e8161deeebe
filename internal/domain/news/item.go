// Package news defines core news models and pure filtering logic.
package news

import "time"

// Item represents a single news item parsed from a feed.
type Item struct {
	GUID        string
	Title       string
	Link        string
	Published   string
	Description string
	Content     string
	Date        time.Time
	FeedTitle   string
	FeedURL     string
}

// HasDate reports whether the item carries a parseable publication time.
func (i Item) HasDate() bool {
	return !i.Date.IsZero()
}

// Feed represents one parsed RSS/Atom feed.
type Feed struct {
	Title string
	URL   string
	Items []Item
}
