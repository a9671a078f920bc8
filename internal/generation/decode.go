package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
)

type flashcardsEnvelope struct {
	Flashcards *[]Flashcard `json:"flashcards"`
}

type quizzesEnvelope struct {
	Quizzes *[]QuizQuestion `json:"quizzes"`
}

// DecodeFlashcards parses a completion of the form {"flashcards": [...]}.
// Every failure wraps apperr.ErrParse.
func DecodeFlashcards(raw string) ([]Flashcard, error) {
	var env flashcardsEnvelope
	if err := unmarshalCompletion(raw, &env); err != nil {
		return nil, err
	}
	if env.Flashcards == nil {
		return nil, fmt.Errorf(`response has no "flashcards" key: %w`, apperr.ErrParse)
	}

	cards := *env.Flashcards
	for i, c := range cards {
		if err := c.Validate(); err != nil {
			return nil, shapeError(i, err)
		}
	}
	return cards, nil
}

// DecodeQuizzes parses a completion of the form {"quizzes": [...]} and checks
// every question has four options one of which is the answer.
func DecodeQuizzes(raw string) ([]QuizQuestion, error) {
	var env quizzesEnvelope
	if err := unmarshalCompletion(raw, &env); err != nil {
		return nil, err
	}
	if env.Quizzes == nil {
		return nil, fmt.Errorf(`response has no "quizzes" key: %w`, apperr.ErrParse)
	}

	questions := *env.Quizzes
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, shapeError(i, err)
		}
	}
	return questions, nil
}

func unmarshalCompletion(raw string, v any) error {
	clean := stripFences(raw)
	if clean == "" {
		return fmt.Errorf("empty response from model: %w", apperr.ErrParse)
	}
	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return fmt.Errorf("response is not a JSON object: %v: %w", err, apperr.ErrParse)
	}
	return nil
}

// shapeError turns an item validation failure into a parse failure; the item
// came from the model, not from the user.
func shapeError(index int, err error) error {
	msg := err.Error()
	if errors.Is(err, apperr.ErrValidation) {
		msg = strings.TrimSuffix(msg, ": "+apperr.ErrValidation.Error())
	}
	return fmt.Errorf("item %d: %s: %w", index, msg, apperr.ErrParse)
}

// stripFences removes a surrounding ```json ... ``` block some models add
// even when asked for bare JSON.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```")
	if nl := strings.IndexByte(clean, '\n'); nl != -1 {
		clean = clean[nl+1:]
	} else {
		clean = strings.TrimPrefix(clean, "json")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
