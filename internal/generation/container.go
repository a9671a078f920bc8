package generation

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/transcript"
)

type GenerationContainer struct {
	Handler *Handler
	Service Service
}

func NewGenerationContainer(ctx context.Context, settings config.Settings, fetcher transcript.Fetcher) (*GenerationContainer, error) {
	provider, err := NewProvider(ctx, settings)
	if err != nil {
		return nil, err
	}

	service := NewService(provider, fetcher)
	handler := NewHandler(service)

	return &GenerationContainer{
		Handler: handler,
		Service: service,
	}, nil
}

// NewProvider picks the completion backend named by settings.
func NewProvider(ctx context.Context, settings config.Settings) (Provider, error) {
	switch settings.CompletionProvider {
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, settings.GeminiAPIKey, settings.GeminiModel)
	case config.ProviderOpenAI, "":
		return NewOpenAIProvider(settings.OpenAIAPIKey, settings.OpenAIModel, settings.OpenAIBaseURL)
	default:
		return nil, fmt.Errorf("%q: %w", settings.CompletionProvider, config.ErrUnknownProvider)
	}
}
