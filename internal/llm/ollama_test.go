package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_GeneratePlaybook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama3.1:8b" {
			t.Errorf("expected model llama3.1:8b, got %s", req.Model)
		}
		if req.Stream {
			t.Error("expected stream to be disabled")
		}

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:           req.Model,
			Response:        "Start with the CRO.",
			Done:            true,
			PromptEvalCount: 100,
			EvalCount:       50,
		})
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(Config{BaseURL: srv.URL, Model: "llama3.1:8b"})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	resp, err := p.GeneratePlaybook(context.Background(), PlaybookRequest{Group: sampleGroup()})
	if err != nil {
		t.Fatalf("GeneratePlaybook failed: %v", err)
	}
	if resp.Playbook != "Start with the CRO." {
		t.Errorf("unexpected playbook: %s", resp.Playbook)
	}
	if resp.TokensUsed != 150 {
		t.Errorf("expected 150 tokens, got %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_RequiresModel(t *testing.T) {
	p, err := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if _, err := p.GeneratePlaybook(context.Background(), PlaybookRequest{Group: sampleGroup()}); err == nil {
		t.Error("expected error when model is unset")
	}
}

func TestOllamaProvider_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(Config{BaseURL: srv.URL, Model: "missing"})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}

	if _, err := p.GeneratePlaybook(context.Background(), PlaybookRequest{Group: sampleGroup()}); err == nil {
		t.Error("expected API error to propagate")
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOllamaProvider failed: %v", err)
	}
	if !p.IsAvailable(context.Background()) {
		t.Error("expected provider to be available")
	}

	srv.Close()
	if p.IsAvailable(context.Background()) {
		t.Error("expected provider to be unavailable after server close")
	}
}
