package digest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/abelbrown/marketdigest/internal/brain"
	"github.com/abelbrown/marketdigest/internal/feeds"
	"github.com/abelbrown/marketdigest/internal/logging"
)

// Extractor asks a language model to distill feed items into market themes.
type Extractor struct {
	provider  brain.Provider
	maxThemes int
}

// NewExtractor creates an Extractor that requests at most maxThemes themes.
func NewExtractor(provider brain.Provider, maxThemes int) *Extractor {
	return &Extractor{provider: provider, maxThemes: maxThemes}
}

// Extract submits the items and returns the parsed digest. A response that
// does not strictly match the schema is an error; there is no re-prompt and
// no truncation.
func (e *Extractor) Extract(ctx context.Context, asOf string, items []feeds.Item) (*Digest, error) {
	prompt, err := BuildPrompt(asOf, e.maxThemes, items)
	if err != nil {
		return nil, err
	}

	resp, err := e.provider.Generate(ctx, brain.Request{
		UserPrompt: prompt,
		ResponseFormat: &brain.ResponseFormat{
			Name:   SchemaName,
			Schema: ResponseSchema(e.maxThemes),
			Strict: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	d, err := ParseDigest([]byte(resp.Content), e.maxThemes)
	if err != nil {
		return nil, err
	}

	logging.Info("extracted themes", "count", len(d.Themes), "as_of", d.AsOf, "model", resp.Model)
	return d, nil
}

// ParseDigest strictly decodes and validates a digest document. Unknown
// fields, a theme count outside 1..maxThemes, or an out-of-enum confidence
// all fail the parse.
func ParseDigest(data []byte, maxThemes int) (*Digest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var d Digest
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("model response is not a valid digest: %w", err)
	}

	if len(d.Themes) == 0 {
		return nil, fmt.Errorf("model response contains no themes")
	}
	if len(d.Themes) > maxThemes {
		return nil, fmt.Errorf("model response contains %d themes, schema allows at most %d", len(d.Themes), maxThemes)
	}
	for i, theme := range d.Themes {
		if !theme.Confidence.valid() {
			return nil, fmt.Errorf("theme %d has invalid confidence %q", i, theme.Confidence)
		}
	}

	return &d, nil
}
