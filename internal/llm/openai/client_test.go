package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"compliance-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	client, err := NewClient("test-key", "gpt-4o", 0.3, 16000)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestCorrectDocumentReturnsContent(t *testing.T) {
	var gotReq chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "# Corrected Policy\n\nbody"}},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		})
	})

	out, err := client.CorrectDocument(context.Background(), llm.CorrectInput{
		SystemPrompt: "policy",
		UserPrompt:   "prompt",
	})
	if err != nil {
		t.Fatalf("CorrectDocument: %v", err)
	}
	if out != "# Corrected Policy\n\nbody" {
		t.Fatalf("unexpected content: %q", out)
	}
	if gotReq.Model != "gpt-4o" {
		t.Fatalf("expected model gpt-4o, got %q", gotReq.Model)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.3 {
		t.Fatalf("expected temperature 0.3, got %v", gotReq.Temperature)
	}
	if gotReq.MaxTokens != 16000 {
		t.Fatalf("expected max_tokens 16000, got %d", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestCorrectDocumentEmptyContentFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "   \n\t "}},
			},
		})
	})

	_, err := client.CorrectDocument(context.Background(), llm.CorrectInput{UserPrompt: "prompt"})
	if err == nil {
		t.Fatalf("expected error for whitespace-only content")
	}
	if !strings.Contains(err.Error(), "openai") {
		t.Fatalf("expected provider-classifiable error, got %v", err)
	}
}

func TestCorrectDocumentProviderErrorPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "rate_limit_error"},
		})
	})

	_, err := client.CorrectDocument(context.Background(), llm.CorrectInput{UserPrompt: "prompt"})
	if err == nil {
		t.Fatalf("expected error for provider error payload")
	}
	if !strings.Contains(err.Error(), "openai error") {
		t.Fatalf("expected openai error, got %v", err)
	}
}

func TestCorrectDocumentNonJSONErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	})

	_, err := client.CorrectDocument(context.Background(), llm.CorrectInput{UserPrompt: "prompt"})
	if err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "openai") {
		t.Fatalf("expected provider-classifiable error, got %v", err)
	}
}

func TestCorrectDocumentTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]any{"choices": []map[string]any{}})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.CorrectDocument(ctx, llm.CorrectInput{UserPrompt: "prompt"})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !strings.Contains(err.Error(), "openai") {
		t.Fatalf("expected provider-classifiable timeout, got %v", err)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o", 0.3, 16000); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", "  ", 0.3, 16000); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
