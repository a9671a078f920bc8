package generation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, config.ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, defaultCompletionTimeout)
	defer cancel()

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini generate content failed")
		return "", fmt.Errorf("gemini request: %v: %w", err, apperr.ErrUpstream)
	}

	raw := result.Text()
	log.WithField("model", p.model).Debugf("Raw completion:\n%s", raw)
	if raw == "" {
		return "", fmt.Errorf("empty response from model: %w", apperr.ErrParse)
	}
	return raw, nil
}
