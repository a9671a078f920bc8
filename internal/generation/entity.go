package generation

import (
	"fmt"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
)

type ContentType string

const (
	ContentFlashcards ContentType = "Flashcards"
	ContentQuizzes    ContentType = "Quizzes"
)

func (c ContentType) IsValid() bool {
	return c == ContentFlashcards || c == ContentQuizzes
}

// ExpectedCount is the number of items the prompt asks the model for.
func (c ContentType) ExpectedCount() int {
	if c == ContentQuizzes {
		return 5
	}
	return 10
}

type InputKind string

const (
	InputText    InputKind = "text"
	InputYouTube InputKind = "youtube"
)

func (k InputKind) IsValid() bool {
	return k == InputText || k == InputYouTube
}

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// OptionsPerQuestion is the fixed number of choices in a generated question.
const OptionsPerQuestion = 4

// Validate checks the shape of a single question: non-empty text, four
// non-empty options and an answer that is one of them.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question text is empty: %w", apperr.ErrValidation)
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("question %q has %d options, want %d: %w", q.Question, len(q.Options), OptionsPerQuestion, apperr.ErrValidation)
	}
	found := false
	for _, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %q has an empty option: %w", q.Question, apperr.ErrValidation)
		}
		if opt == q.Answer {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("answer %q of question %q is not among its options: %w", q.Answer, q.Question, apperr.ErrValidation)
	}
	return nil
}

func (f Flashcard) Validate() error {
	if f.Front == "" || f.Back == "" {
		return fmt.Errorf("flashcard must have a front and a back: %w", apperr.ErrValidation)
	}
	return nil
}

type GenerateRequest struct {
	Text       string      `json:"text"`
	OutputType ContentType `json:"outputType"`
	InputType  InputKind   `json:"inputType"`
}

// Result holds exactly one of the two lists, matching the requested content type.
type Result struct {
	Type       ContentType
	Flashcards []Flashcard
	Quizzes    []QuizQuestion
}

// Items returns the populated list for JSON encoding as a bare array.
func (r *Result) Items() any {
	if r.Type == ContentQuizzes {
		return r.Quizzes
	}
	return r.Flashcards
}

func (r *Result) Len() int {
	if r.Type == ContentQuizzes {
		return len(r.Quizzes)
	}
	return len(r.Flashcards)
}
