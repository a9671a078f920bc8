package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/transcript"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*Result, error)
}

type service struct {
	provider Provider
	fetcher  transcript.Fetcher
}

func NewService(provider Provider, fetcher transcript.Fetcher) Service {
	return &service{provider: provider, fetcher: fetcher}
}

// Generate validates the request, resolves a transcript for video input, makes
// a single completion call and decodes the reply. The returned list is the
// model output unmodified.
func (s *service) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"output_type": req.OutputType,
		"input_type":  req.InputType,
	})

	if err := validateRequest(req); err != nil {
		log.WithError(err).Warn("Rejected generation request")
		return nil, err
	}

	content := req.Text
	if req.InputType == InputYouTube {
		text, err := s.fetcher.Fetch(ctx, strings.TrimSpace(req.Text))
		if err != nil {
			return nil, err
		}
		content = text
	}

	system := BuildSystemPrompt(req.OutputType, req.InputType)
	raw, err := s.provider.Complete(ctx, system, content)
	if err != nil {
		return nil, err
	}

	result := &Result{Type: req.OutputType}
	if req.OutputType == ContentQuizzes {
		result.Quizzes, err = DecodeQuizzes(raw)
	} else {
		result.Flashcards, err = DecodeFlashcards(raw)
	}
	if err != nil {
		log.WithError(err).Error("Failed to decode completion")
		return nil, err
	}

	if want := req.OutputType.ExpectedCount(); result.Len() != want {
		log.Warnf("Model returned %d items, prompt asked for %d", result.Len(), want)
	}

	log.Infof("Generated %d items", result.Len())
	return result, nil
}

func validateRequest(req GenerateRequest) error {
	if !req.OutputType.IsValid() {
		return fmt.Errorf("outputType must be %q or %q: %w", ContentFlashcards, ContentQuizzes, apperr.ErrValidation)
	}
	if !req.InputType.IsValid() {
		return fmt.Errorf("inputType must be %q or %q: %w", InputText, InputYouTube, apperr.ErrValidation)
	}
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("please enter some text to generate content: %w", apperr.ErrValidation)
	}
	if req.InputType == InputYouTube && !transcript.IsVideoURL(req.Text) {
		return fmt.Errorf("please enter a valid url: %w", apperr.ErrValidation)
	}
	return nil
}
