// Package selection narrows the fetched item list to what the model sees.
package selection

import "github.com/abelbrown/marketdigest/internal/feeds"

// Top returns the first n items in their existing order. This is a prefix
// cut over fetch/dedup order, not a relevance ranking.
func Top(items []feeds.Item, n int) []feeds.Item {
	if n < 0 {
		n = 0
	}
	if n >= len(items) {
		return items
	}
	return items[:n]
}
