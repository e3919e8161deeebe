// Package usecase contains application-level services.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuto-t/kawaraban/internal/domain/news"
)

const (
	// DefaultMaxItems bounds how many items a briefing may carry.
	DefaultMaxItems = 200

	// NoNewsMessage is the sentinel returned when fetching succeeded but no
	// item matched the requested date range. It is a normal outcome, not an
	// error.
	NoNewsMessage = "I looked for news in the requested period, but couldn't find any matching items in the configured feeds. Try 'today', 'yesterday', or a recent date (YYYY-MM-DD)."

	// AllFeedsFailedMessage is returned when every configured feed failed
	// to fetch.
	AllFeedsFailedMessage = "Sorry, I couldn't reach any of the news feeds right now. Please try again in a moment."
)

// FeedFetcher abstracts retrieval of parsed items for one feed URL.
type FeedFetcher interface {
	FetchItems(ctx context.Context, url string) ([]news.Item, error)
}

// FetchReport summarizes the outcome of one briefing's feed retrievals.
type FetchReport struct {
	Requested int
	Succeeded int
	Failed    int
	Errors    []error
}

// AllFailed reports whether every requested feed failed.
func (r FetchReport) AllFailed() bool {
	return r.Requested > 0 && r.Failed == r.Requested
}

// Briefing is the assembled, formatted result of one news request.
type Briefing struct {
	Text   string
	Items  []news.Item
	Range  news.DateRange
	Report FetchReport
}

// Empty reports whether no items survived fetching and filtering.
func (b Briefing) Empty() bool {
	return len(b.Items) == 0
}

// BriefingService assembles date-filtered news briefings from a fixed,
// ordered list of feeds.
type BriefingService struct {
	Fetcher  FeedFetcher
	MaxItems int
}

// NewBriefingService constructs a BriefingService.
func NewBriefingService(fetcher FeedFetcher, maxItems int) *BriefingService {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return new(BriefingService{
		Fetcher:  fetcher,
		MaxItems: maxItems,
	})
}

// Assemble fetches each feed in configured order, filters items by the
// requested range and renders the retained items as a text briefing.
//
// A failing feed is recorded in the report and skipped; it never aborts
// retrieval of the others. Feeds are not interleaved by timestamp: output
// preserves per-feed order, feeds in configured order.
func (s *BriefingService) Assemble(ctx context.Context, urls []string, r news.DateRange) Briefing {
	briefing := Briefing{Range: r}
	if s == nil || s.Fetcher == nil {
		briefing.Text = AllFeedsFailedMessage
		return briefing
	}

	var items []news.Item
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		briefing.Report.Requested++

		fetched, err := s.Fetcher.FetchItems(ctx, url)
		if err != nil {
			briefing.Report.Failed++
			briefing.Report.Errors = append(briefing.Report.Errors, err)
			continue
		}
		briefing.Report.Succeeded++
		items = append(items, news.FilterByDate(fetched, r)...)
	}

	if len(items) > s.maxItems() {
		items = items[:s.maxItems()]
	}
	briefing.Items = items

	switch {
	case len(items) > 0:
		briefing.Text = renderBriefing(items, r)
	case briefing.Report.AllFailed():
		briefing.Text = AllFeedsFailedMessage
	default:
		briefing.Text = NoNewsMessage
	}
	return briefing
}

func (s *BriefingService) maxItems() int {
	if s.MaxItems <= 0 {
		return DefaultMaxItems
	}
	return s.MaxItems
}

func renderBriefing(items []news.Item, r news.DateRange) string {
	var b strings.Builder
	fmt.Fprintf(&b, "News briefing for %s (%d items)\n", formatRange(r), len(items))

	for _, item := range items {
		b.WriteString("\n")
		fmt.Fprintf(&b, "### %s\n", strings.TrimSpace(item.Title))
		fmt.Fprintf(&b, "Source: %s | Published: %s\n", sourceName(item), strings.TrimSpace(item.Published))
		fmt.Fprintf(&b, "Link: %s\n", strings.TrimSpace(item.Link))
		if desc := strings.TrimSpace(item.Description); desc != "" {
			fmt.Fprintf(&b, "%s\n", desc)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatRange(r news.DateRange) string {
	start := r.Start.Format("2006-01-02")
	end := r.End.Format("2006-01-02")
	if start == end {
		return start
	}
	return start + " to " + end
}

func sourceName(item news.Item) string {
	if title := strings.TrimSpace(item.FeedTitle); title != "" {
		return title
	}
	return strings.TrimSpace(item.FeedURL)
}
