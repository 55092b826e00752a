// Package notion is a minimal client for the Notion pages API, covering
// only the create-page call the digest publisher needs.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/abelbrown/marketdigest/internal/digest"
	"github.com/abelbrown/marketdigest/internal/logging"
)

const defaultEndpoint = "https://api.notion.com/v1/pages"

// publishInterval spaces out page creation as a courtesy to the API.
const publishInterval = 400 * time.Millisecond

// APIError is a non-2xx answer from the Notion API. Status and body are
// kept verbatim for diagnosis.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion error %d: %s", e.Status, e.Body)
}

// Client creates digest rows in a Notion database.
type Client struct {
	token      string
	databaseID string
	version    string
	endpoint   string
	client     *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client for the given database. version pins the
// Notion-Version header.
func NewClient(token, databaseID, version string) *Client {
	return &Client{
		token:      token,
		databaseID: databaseID,
		version:    version,
		endpoint:   defaultEndpoint,
		client:     &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(publishInterval), 1),
	}
}

// pageRequest is the body of a create-page call.
type pageRequest struct {
	Parent     pageParent             `json:"parent"`
	Properties map[string]interface{} `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePage creates one database row for a theme. It waits on the
// client's limiter first, so back-to-back calls are spaced by
// publishInterval. Any status >= 300 is returned as an *APIError.
func (c *Client) CreatePage(ctx context.Context, theme digest.Theme, asOfISO string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	payload := pageRequest{
		Parent: pageParent{DatabaseID: c.databaseID},
		Properties: map[string]interface{}{
			"Theme":          titleProp(theme.Theme),
			"As of":          dateProp(asOfISO),
			"What happened":  richTextProp(theme.WhatHappened),
			"Why it matters": richTextProp(theme.WhyItMatters),
			"Market impact":  richTextProp(theme.MarketImpact),
			"Watch next":     richTextProp(theme.WatchNext),
			"Confidence":     selectProp(string(theme.Confidence)),
			"Sources":        urlProp(theme.BestSourceURL),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal page request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	logging.Debug("created page", "theme", theme.Theme, "status", resp.StatusCode)
	return nil
}

// Property constructors for the Notion page payload.

func titleProp(s string) map[string]interface{} {
	return map[string]interface{}{
		"title": []map[string]interface{}{textContent(s)},
	}
}

func richTextProp(s string) map[string]interface{} {
	return map[string]interface{}{
		"rich_text": []map[string]interface{}{textContent(s)},
	}
}

func textContent(s string) map[string]interface{} {
	return map[string]interface{}{
		"text": map[string]string{"content": s},
	}
}

func dateProp(start string) map[string]interface{} {
	return map[string]interface{}{
		"date": map[string]string{"start": start},
	}
}

func selectProp(name string) map[string]interface{} {
	return map[string]interface{}{
		"select": map[string]string{"name": name},
	}
}

func urlProp(u string) map[string]interface{} {
	return map[string]interface{}{"url": u}
}
