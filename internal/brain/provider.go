// Package brain provides access to language model providers.
package brain

import (
	"context"
)

// Provider is the interface for AI providers
type Provider interface {
	// Name returns the provider name (e.g., "openai")
	Name() string

	// Available returns true if the provider is configured and ready
	Available() bool

	// Generate sends a prompt and returns the response
	Generate(ctx context.Context, req Request) (Response, error)
}

// Request is a prompt request to an AI provider
type Request struct {
	UserPrompt string

	// ResponseFormat, when set, requires output that strictly conforms
	// to a JSON schema (structured outputs).
	ResponseFormat *ResponseFormat
}

// ResponseFormat names a JSON schema the response must satisfy.
type ResponseFormat struct {
	Name   string
	Schema interface{}
	Strict bool
}

// Response is the AI provider's response
type Response struct {
	Content     string
	Model       string
	RawResponse string // The raw API response body for logging/debugging
}
