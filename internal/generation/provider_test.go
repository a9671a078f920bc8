package generation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

type recordedChat struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

func chatCompletionBody(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	}
}

func newOpenAIServer(t *testing.T, status int, body any, seen *recordedChat) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsSystemAndUserMessages", func(t *testing.T) {
		var seen recordedChat
		reply := `{"flashcards":[]}`
		srv := newOpenAIServer(t, http.StatusOK, chatCompletionBody(reply), &seen)

		p, err := generation.NewOpenAIProvider("test-key", "gpt-4o-mini", srv.URL+"/v1")
		if err != nil {
			t.Fatalf("NewOpenAIProvider failed: %v", err)
		}

		got, err := p.Complete(ctx, "system prompt", "user text")
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if got != reply {
			t.Errorf("reply = %q", got)
		}
		if seen.Model != "gpt-4o-mini" || len(seen.Messages) != 2 {
			t.Fatalf("request = %+v", seen)
		}
		if seen.Messages[0].Role != "system" || seen.Messages[0].Content != "system prompt" {
			t.Errorf("system message = %+v", seen.Messages[0])
		}
		if seen.Messages[1].Role != "user" || seen.Messages[1].Content != "user text" {
			t.Errorf("user message = %+v", seen.Messages[1])
		}
		if seen.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %q", seen.ResponseFormat.Type)
		}
	})

	t.Run("ServerErrorIsUpstream", func(t *testing.T) {
		body := map[string]any{"error": map[string]any{"message": "overloaded", "type": "server_error"}}
		srv := newOpenAIServer(t, http.StatusInternalServerError, body, nil)

		p, _ := generation.NewOpenAIProvider("test-key", "", srv.URL+"/v1")
		_, err := p.Complete(ctx, "s", "u")
		if !errors.Is(err, apperr.ErrUpstream) {
			t.Errorf("err = %v, want ErrUpstream", err)
		}
	})

	t.Run("NoChoicesIsParseError", func(t *testing.T) {
		body := chatCompletionBody("")
		body["choices"] = []map[string]any{}
		srv := newOpenAIServer(t, http.StatusOK, body, nil)

		p, _ := generation.NewOpenAIProvider("test-key", "", srv.URL+"/v1")
		_, err := p.Complete(ctx, "s", "u")
		if !errors.Is(err, apperr.ErrParse) {
			t.Errorf("err = %v, want ErrParse", err)
		}
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, err := generation.NewOpenAIProvider("  ", "", "")
		if !errors.Is(err, config.ErrMissingAPIKey) {
			t.Errorf("err = %v, want ErrMissingAPIKey", err)
		}
	})
}

func TestNewProvider(t *testing.T) {
	t.Run("UnknownProvider", func(t *testing.T) {
		_, err := generation.NewProvider(context.Background(), config.Settings{CompletionProvider: "llama"})
		if !errors.Is(err, config.ErrUnknownProvider) {
			t.Errorf("err = %v, want ErrUnknownProvider", err)
		}
	})

	t.Run("GeminiWithoutKey", func(t *testing.T) {
		_, err := generation.NewProvider(context.Background(), config.Settings{CompletionProvider: config.ProviderGemini})
		if !errors.Is(err, config.ErrMissingAPIKey) {
			t.Errorf("err = %v, want ErrMissingAPIKey", err)
		}
	})
}
