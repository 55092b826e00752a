// Package app wires the digest pipeline: load sources, fetch items,
// select the top slice, extract themes, publish.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/abelbrown/marketdigest/internal/config"
	"github.com/abelbrown/marketdigest/internal/digest"
	"github.com/abelbrown/marketdigest/internal/feeds"
	"github.com/abelbrown/marketdigest/internal/logging"
	"github.com/abelbrown/marketdigest/internal/selection"
	"github.com/abelbrown/marketdigest/internal/sources"
)

// targetZone is the time zone the digest date is computed in.
const targetZone = "Europe/Zurich"

// Fetcher retrieves deduplicated items from the configured feeds.
type Fetcher interface {
	FetchAll(ctx context.Context, urls []string) ([]feeds.Item, error)
}

// Extractor turns selected items into a digest.
type Extractor interface {
	Extract(ctx context.Context, asOf string, items []feeds.Item) (*digest.Digest, error)
}

// Publisher writes one theme as a database row.
type Publisher interface {
	CreatePage(ctx context.Context, theme digest.Theme, asOfISO string) error
}

// App is the run-once digest pipeline.
type App struct {
	Config    *config.Config
	Fetcher   Fetcher
	Extractor Extractor
	Publisher Publisher
	Out       io.Writer // run summary lines
}

// Run executes one digest run. Zero fetched items is a successful no-op;
// every other failure aborts the run. Pages created before a publish
// failure are left in place.
func (a *App) Run(ctx context.Context) error {
	loc, err := time.LoadLocation(targetZone)
	if err != nil {
		return fmt.Errorf("failed to load time zone %s: %w", targetZone, err)
	}
	nowLocal := time.Now().UTC().In(loc)
	asOfLocal := nowLocal.Format("2006-01-02") // date shown to the model
	asOfISO := nowLocal.Format("2006-01-02")   // date stored on each row

	urls, err := sources.Load(a.Config.SourcesFile)
	if err != nil {
		return err
	}
	logging.Info("loaded sources", "count", len(urls), "file", a.Config.SourcesFile)

	items, err := a.Fetcher.FetchAll(ctx, urls)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.Out, "No RSS items found.")
		return nil
	}
	logging.Info("fetched items", "count", len(items))

	items = selection.Top(items, a.Config.MaxArticles)

	d, err := a.Extractor.Extract(ctx, asOfLocal, items)
	if err != nil {
		return err
	}

	created := 0
	for _, theme := range d.Themes {
		if err := a.Publisher.CreatePage(ctx, theme, asOfISO); err != nil {
			return fmt.Errorf("failed to publish theme %q: %w", theme.Theme, err)
		}
		created++
	}

	fmt.Fprintf(a.Out, "Created %d Notion pages for %s\n", created, d.AsOf)
	return nil
}
