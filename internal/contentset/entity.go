package contentset

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

// ContentSet is a named batch of flashcards or quiz questions owned by one
// user. (user_id, is_quiz, name) is unique.
type ContentSet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:text;not null;uniqueIndex:idx_content_sets_owner_kind_name,priority:1" json:"-"`
	IsQuiz    bool      `gorm:"not null;uniqueIndex:idx_content_sets_owner_kind_name,priority:2" json:"isQuiz"`
	Name      string    `gorm:"type:text;not null;uniqueIndex:idx_content_sets_owner_kind_name,priority:3" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Flashcards []SetFlashcard    `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE" json:"-"`
	Questions  []SetQuizQuestion `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE" json:"-"`
}

type SetFlashcard struct {
	SetID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemKey    string    `gorm:"type:text;primaryKey"`
	OrderIndex int       `gorm:"not null"`
	Front      string    `gorm:"type:text;not null"`
	Back       string    `gorm:"type:text;not null"`
}

type SetQuizQuestion struct {
	SetID      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ItemKey    string         `gorm:"type:text;primaryKey"`
	OrderIndex int            `gorm:"not null"`
	Question   string         `gorm:"type:text;not null"`
	Options    datatypes.JSON `gorm:"not null"`
	Answer     string         `gorm:"type:text;not null"`
}

// SaveRequest is the body of POST /sets. Exactly one of the lists is used,
// chosen by IsQuiz.
type SaveRequest struct {
	Name       string                    `json:"name"`
	IsQuiz     bool                      `json:"isQuiz"`
	Flashcards []generation.Flashcard    `json:"flashcards,omitempty"`
	Questions  []generation.QuizQuestion `json:"questions,omitempty"`
}

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// SanitizeName drops every character that is not a letter, digit, underscore
// or whitespace. "Chapter 1!!" becomes "Chapter 1".
func SanitizeName(name string) string {
	return nonWordChars.ReplaceAllString(name, "")
}

func flashcardKey(i int) string { return fmt.Sprintf("flashcard_%d", i) }

func quizKey(i int) string { return fmt.Sprintf("quiz_%d", i) }

func toSetFlashcards(setID uuid.UUID, cards []generation.Flashcard) []SetFlashcard {
	rows := make([]SetFlashcard, len(cards))
	for i, c := range cards {
		rows[i] = SetFlashcard{
			SetID:      setID,
			ItemKey:    flashcardKey(i),
			OrderIndex: i,
			Front:      c.Front,
			Back:       c.Back,
		}
	}
	return rows
}

func toSetQuizQuestions(setID uuid.UUID, questions []generation.QuizQuestion) ([]SetQuizQuestion, error) {
	rows := make([]SetQuizQuestion, len(questions))
	for i, q := range questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			return nil, err
		}
		rows[i] = SetQuizQuestion{
			SetID:      setID,
			ItemKey:    quizKey(i),
			OrderIndex: i,
			Question:   q.Question,
			Options:    datatypes.JSON(opts),
			Answer:     q.Answer,
		}
	}
	return rows, nil
}

func (f SetFlashcard) toFlashcard() generation.Flashcard {
	return generation.Flashcard{Front: f.Front, Back: f.Back}
}

func (q SetQuizQuestion) toQuizQuestion() (generation.QuizQuestion, error) {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return generation.QuizQuestion{}, fmt.Errorf("options of %s: %w", q.ItemKey, err)
	}
	return generation.QuizQuestion{Question: q.Question, Options: opts, Answer: q.Answer}, nil
}
