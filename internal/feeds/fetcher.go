package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/abelbrown/marketdigest/internal/logging"
)

const (
	// maxEntriesPerFeed caps how many entries a single feed contributes
	// before deduplication.
	maxEntriesPerFeed = 25

	maxSummaryLen   = 700
	maxPublishedLen = 120
)

// Fetcher retrieves and parses syndication feeds.
type Fetcher struct {
	parser *gofeed.Parser
}

// NewFetcher creates a Fetcher. The HTTP client carries no timeout: a
// stuck feed blocks the run unless the caller's context expires.
func NewFetcher() *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{}
	parser.UserAgent = "marketdigest/1.0"
	return &Fetcher{parser: parser}
}

// FetchAll fetches every feed in order and returns the combined,
// link-deduplicated items. A fetch or parse failure on any single feed
// fails the whole run.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]Item, error) {
	var items []Item
	for _, url := range urls {
		feed, err := f.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
		}

		entries := feed.Items
		if len(entries) > maxEntriesPerFeed {
			entries = entries[:maxEntriesPerFeed]
		}

		kept := 0
		for _, entry := range entries {
			item, ok := convertEntry(url, entry)
			if !ok {
				continue
			}
			items = append(items, item)
			kept++
		}
		logging.Debug("fetched feed", "url", url, "entries", len(feed.Items), "kept", kept)
	}

	return Dedupe(items), nil
}

// convertEntry normalizes one raw entry. Entries without a link or a
// non-empty title are dropped.
func convertEntry(feedURL string, entry *gofeed.Item) (Item, bool) {
	title := strings.TrimSpace(entry.Title)
	if entry.Link == "" || title == "" {
		return Item{}, false
	}

	// Prefer the published date; some Atom feeds only carry updated.
	published := entry.Published
	if published == "" {
		published = entry.Updated
	}

	return Item{
		SourceFeed: feedURL,
		Title:      title,
		Link:       entry.Link,
		Summary:    truncate(strings.TrimSpace(entry.Description), maxSummaryLen),
		Published:  truncate(published, maxPublishedLen),
	}, true
}

// Dedupe keeps the first item seen for each link, preserving order.
func Dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	deduped := make([]Item, 0, len(items))
	for _, item := range items {
		if seen[item.Link] {
			continue
		}
		seen[item.Link] = true
		deduped = append(deduped, item)
	}
	return deduped
}

// truncate limits s to max characters (runes, not bytes).
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
