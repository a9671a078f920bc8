package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

// Provider sends one system instruction and one user message to a completion
// endpoint and returns the raw text of the reply.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const defaultCompletionTimeout = 90 * time.Second

type openAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider fails when apiKey is empty so a misconfigured deployment
// is caught at startup. baseURL may be empty.
func NewOpenAIProvider(apiKey, model, baseURL string) (Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, config.ErrMissingAPIKey
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAIProvider{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (p *openAIProvider) Complete(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, defaultCompletionTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		log.WithError(err).Error("OpenAI chat completion failed")
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices: %w", apperr.ErrParse)
	}

	raw := resp.Choices[0].Message.Content
	log.WithField("model", p.model).Debugf("Raw completion:\n%s", raw)
	return raw, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("openai status %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, apperr.ErrUpstream)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("openai status %d: %w", reqErr.HTTPStatusCode, apperr.ErrUpstream)
	}
	return fmt.Errorf("openai request: %v: %w", err, apperr.ErrUpstream)
}
