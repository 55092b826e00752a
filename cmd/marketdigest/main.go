package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/abelbrown/marketdigest/internal/app"
	"github.com/abelbrown/marketdigest/internal/brain"
	"github.com/abelbrown/marketdigest/internal/config"
	"github.com/abelbrown/marketdigest/internal/digest"
	"github.com/abelbrown/marketdigest/internal/feeds"
	"github.com/abelbrown/marketdigest/internal/logging"
	"github.com/abelbrown/marketdigest/internal/notion"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logging.Init(cfg.LogLevel)

	provider := brain.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.Model)

	a := &app.App{
		Config:    cfg,
		Fetcher:   feeds.NewFetcher(),
		Extractor: digest.NewExtractor(provider, cfg.MaxThemes),
		Publisher: notion.NewClient(cfg.NotionToken, cfg.NotionDatabaseID, cfg.NotionVersion),
		Out:       os.Stdout,
	}

	if err := a.Run(context.Background()); err != nil {
		var apiErr *notion.APIError
		if errors.As(err, &apiErr) {
			logging.Fatal("publish failed", "status", apiErr.Status, "body", apiErr.Body)
		}
		logging.Fatal("run failed", "error", err)
	}
}
