// Package feeds retrieves and normalizes entries from the configured
// RSS/Atom feeds.
package feeds

// Item is a single normalized feed entry. Items are serialized into the
// model prompt, so the JSON tags are part of the contract.
type Item struct {
	SourceFeed string `json:"source_feed"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Summary    string `json:"summary"`   // at most 700 characters
	Published  string `json:"published"` // free-form date text, at most 120 characters
}
