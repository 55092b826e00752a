package brain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIAvailable(t *testing.T) {
	if !NewOpenAIProvider("test-key", "gpt-5-mini").Available() {
		t.Error("Available() returned false, want true")
	}
	if NewOpenAIProvider("", "gpt-5-mini").Available() {
		t.Error("Available() returned true, want false")
	}
}

func TestOpenAIGenerateNotConfigured(t *testing.T) {
	p := NewOpenAIProvider("", "gpt-5-mini")
	_, err := p.Generate(context.Background(), Request{UserPrompt: "hi"})
	if err == nil {
		t.Fatal("expected error for unconfigured provider")
	}
}

func TestOpenAIGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization: %s", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content-type: %s", ct)
		}

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			ResponseFormat struct {
				Type       string `json:"type"`
				JSONSchema struct {
					Name   string                 `json:"name"`
					Strict bool                   `json:"strict"`
					Schema map[string]interface{} `json:"schema"`
				} `json:"json_schema"`
			} `json:"response_format"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		if body.Model != "gpt-5-mini" {
			t.Errorf("unexpected model: %s", body.Model)
		}
		if len(body.Messages) != 1 || body.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", body.Messages)
		}
		if body.ResponseFormat.Type != "json_schema" {
			t.Errorf("unexpected response_format type: %s", body.ResponseFormat.Type)
		}
		if body.ResponseFormat.JSONSchema.Name != "market_digest" {
			t.Errorf("unexpected schema name: %s", body.ResponseFormat.JSONSchema.Name)
		}
		if !body.ResponseFormat.JSONSchema.Strict {
			t.Error("expected strict schema")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"model": "gpt-5-mini",
			"choices": [{"message": {"content": "{\"as_of\":\"2024-01-02\"}"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	p := NewOpenAIProvider("test-key", "gpt-5-mini")
	p.endpoint = server.URL

	resp, err := p.Generate(context.Background(), Request{
		UserPrompt: "summarize",
		ResponseFormat: &ResponseFormat{
			Name:   "market_digest",
			Schema: map[string]interface{}{"type": "object"},
			Strict: true,
		},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Content != `{"as_of":"2024-01-02"}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if resp.Model != "gpt-5-mini" {
		t.Errorf("unexpected model: %s", resp.Model)
	}
}

func TestOpenAIGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewOpenAIProvider("test-key", "gpt-5-mini")
	p.endpoint = server.URL

	_, err := p.Generate(context.Background(), Request{UserPrompt: "hi"})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry status: %v", err)
	}
	if !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("error should carry body: %v", err)
	}
}
