package generation_test

import (
	"errors"
	"testing"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

func TestDecodeFlashcards(t *testing.T) {
	t.Run("Canonical", func(t *testing.T) {
		want := canonicalFlashcards(10)
		got, err := generation.DecodeFlashcards(mustJSON(map[string]any{"flashcards": want}))
		if err != nil {
			t.Fatalf("DecodeFlashcards failed: %v", err)
		}
		if len(got) != 10 || got[3] != want[3] {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("FencedJSON", func(t *testing.T) {
		raw := "```json\n{\"flashcards\":[{\"front\":\"a\",\"back\":\"b\"}]}\n```"
		got, err := generation.DecodeFlashcards(raw)
		if err != nil {
			t.Fatalf("DecodeFlashcards failed: %v", err)
		}
		if len(got) != 1 || got[0].Front != "a" {
			t.Errorf("got %+v", got)
		}
	})

	failures := map[string]string{
		"NotJSON":      "Sure! Here are your flashcards:",
		"Empty":        "   ",
		"MissingKey":   `{"cards":[{"front":"a","back":"b"}]}`,
		"WrongKey":     `{"quizzes":[]}`,
		"NullList":     `{"flashcards":null}`,
		"EmptyBack":    `{"flashcards":[{"front":"a","back":""}]}`,
		"WrongType":    `{"flashcards":"ten cards"}`,
		"ArrayAtRoot":  `[{"front":"a","back":"b"}]`,
		"TruncatedObj": `{"flashcards":[{"front":"a"`,
	}
	for name, raw := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := generation.DecodeFlashcards(raw)
			if !errors.Is(err, apperr.ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
		})
	}
}

func TestDecodeQuizzes(t *testing.T) {
	t.Run("Canonical", func(t *testing.T) {
		want := canonicalQuizzes(5)
		got, err := generation.DecodeQuizzes(mustJSON(map[string]any{"quizzes": want}))
		if err != nil {
			t.Fatalf("DecodeQuizzes failed: %v", err)
		}
		if len(got) != 5 {
			t.Fatalf("len = %d", len(got))
		}
		for i, q := range got {
			if q.Answer != want[i].Answer || len(q.Options) != generation.OptionsPerQuestion {
				t.Errorf("question %d = %+v", i, q)
			}
		}
	})

	failures := map[string]string{
		"MissingKey":        `{"flashcards":[]}`,
		"ThreeOptions":      `{"quizzes":[{"question":"q","options":["a","b","c"],"answer":"a"}]}`,
		"FiveOptions":       `{"quizzes":[{"question":"q","options":["a","b","c","d","e"],"answer":"a"}]}`,
		"AnswerNotInOption": `{"quizzes":[{"question":"q","options":["a","b","c","d"],"answer":"C"}]}`,
		"LetterAnswer":      `{"quizzes":[{"question":"q","options":["A) x","B) y","C) z","D) w"],"answer":"C"}]}`,
		"EmptyQuestion":     `{"quizzes":[{"question":"","options":["a","b","c","d"],"answer":"a"}]}`,
		"EmptyOption":       `{"quizzes":[{"question":"q","options":["a","","c","d"],"answer":"a"}]}`,
	}
	for name, raw := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := generation.DecodeQuizzes(raw)
			if !errors.Is(err, apperr.ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
			if errors.Is(err, apperr.ErrValidation) {
				t.Errorf("model output must not be reported as a user validation error: %v", err)
			}
		})
	}
}
