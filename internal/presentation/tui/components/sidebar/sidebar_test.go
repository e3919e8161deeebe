package sidebar

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestFeedLabelStripsScheme(t *testing.T) {
	require.Equal(t, "feeds.bbci.co.uk/news/rss.xml", feedLabel("https://feeds.bbci.co.uk/news/rss.xml", 40))
	require.Equal(t, "example.com/rss", feedLabel("http://example.com/rss", 40))
}

func TestFeedLabelTruncatesToWidth(t *testing.T) {
	got := feedLabel("https://feeds.npr.org/1001/rss.xml", 12)

	require.LessOrEqual(t, ansi.StringWidth(got), 12)
	require.True(t, strings.HasSuffix(got, "..."))
}

func TestFeedLabelKeepsRunesIntact(t *testing.T) {
	got := feedLabel("https://ニュース.example.jp/フィード/rss.xml", 10)

	require.True(t, utf8.ValidString(got), "truncation must not split a rune")
	require.LessOrEqual(t, ansi.StringWidth(got), 10)
}

func TestFeedLabelZeroWidth(t *testing.T) {
	require.Equal(t, "example.com/rss", feedLabel("https://example.com/rss", 0))
}

func TestRenderListsFeeds(t *testing.T) {
	got := Render(Props{
		Feeds:  []string{"https://feeds.bbci.co.uk/news/rss.xml", "https://feeds.npr.org/1001/rss.xml"},
		Width:  36,
		Height: 10,
		Title:  "Feeds",
	})

	require.Contains(t, got, "Feeds")
	require.Contains(t, got, "feeds.bbci.co.uk")
	require.Contains(t, got, "feeds.npr.org")
}
