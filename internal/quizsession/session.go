package quizsession

import (
	"fmt"
	"slices"
	"time"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

type State string

const (
	StateAnswering State = "answering"
	StateCompleted State = "completed"
)

// ErrCompleted is returned by SelectOption and Advance once every question
// has been answered. Only Restart leaves the completed state.
var ErrCompleted = fmt.Errorf("quiz is already completed: %w", apperr.ErrConflict)

// Session walks a user through an ordered list of questions.
//
// CurrentIndex is in [0, len(Questions)]; len(Questions) means completed.
// SelectedOption is empty until an option is picked for the current question.
type Session struct {
	ID             string                    `json:"id"`
	UserID         string                    `json:"userId"`
	SetID          string                    `json:"setId,omitempty"`
	Questions      []generation.QuizQuestion `json:"questions"`
	CurrentIndex   int                       `json:"currentIndex"`
	SelectedOption string                    `json:"selectedOption"`
	Score          int                       `json:"score"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
}

func NewSession(id, userID string, questions []generation.QuizQuestion) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("a quiz needs at least one question: %w", apperr.ErrValidation)
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	return &Session{
		ID:        id,
		UserID:    userID,
		Questions: questions,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (s *Session) State() State {
	if s.CurrentIndex >= len(s.Questions) {
		return StateCompleted
	}
	return StateAnswering
}

// SelectOption locks in an answer for the current question. Once an option
// is selected further calls are no-ops until Advance.
func (s *Session) SelectOption(opt string) error {
	if s.State() == StateCompleted {
		return ErrCompleted
	}
	if s.SelectedOption != "" {
		return nil
	}
	if !slices.Contains(s.Questions[s.CurrentIndex].Options, opt) {
		return fmt.Errorf("%q is not an option of the current question: %w", opt, apperr.ErrValidation)
	}
	s.SelectedOption = opt
	s.touch()
	return nil
}

// Advance scores the current question and moves on. Advancing without a
// selection is allowed and counts as a wrong answer.
func (s *Session) Advance() error {
	if s.State() == StateCompleted {
		return ErrCompleted
	}
	if s.SelectedOption == s.Questions[s.CurrentIndex].Answer {
		s.Score++
	}
	s.CurrentIndex++
	s.SelectedOption = ""
	s.touch()
	return nil
}

// Restart goes back to the first question with a zero score from any state.
func (s *Session) Restart() {
	s.CurrentIndex = 0
	s.Score = 0
	s.SelectedOption = ""
	s.touch()
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// QuestionView is a question without its answer.
type QuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Snapshot is what clients see. Answer and Correct are only set once an
// option has been selected for the current question.
type Snapshot struct {
	ID             string        `json:"id"`
	SetID          string        `json:"setId,omitempty"`
	State          State         `json:"state"`
	Index          int           `json:"index"`
	Total          int           `json:"total"`
	Score          int           `json:"score"`
	Question       *QuestionView `json:"question,omitempty"`
	SelectedOption string        `json:"selectedOption,omitempty"`
	Answer         string        `json:"answer,omitempty"`
	Correct        *bool         `json:"correct,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:    s.ID,
		SetID: s.SetID,
		State: s.State(),
		Index: s.CurrentIndex,
		Total: len(s.Questions),
		Score: s.Score,
	}
	if snap.State == StateCompleted {
		return snap
	}

	q := s.Questions[s.CurrentIndex]
	snap.Question = &QuestionView{Question: q.Question, Options: q.Options}
	if s.SelectedOption != "" {
		correct := s.SelectedOption == q.Answer
		snap.SelectedOption = s.SelectedOption
		snap.Answer = q.Answer
		snap.Correct = &correct
	}
	return snap
}
