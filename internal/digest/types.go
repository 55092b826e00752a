// Package digest turns fetched news items into a structured market digest.
package digest

// Confidence grades how well the input items support a theme.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// valid reports whether c is one of the declared grades.
func (c Confidence) valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Theme is one market theme extracted from the day's news.
type Theme struct {
	Theme         string     `json:"theme"`
	WhatHappened  string     `json:"what_happened"`
	WhyItMatters  string     `json:"why_it_matters"`
	MarketImpact  string     `json:"market_impact"`
	WatchNext     string     `json:"watch_next"`
	Confidence    Confidence `json:"confidence"`
	BestSourceURL string     `json:"best_source_url"`
}

// Digest is the model's full answer for one run.
type Digest struct {
	AsOf   string  `json:"as_of"`
	Themes []Theme `json:"themes"`
}
