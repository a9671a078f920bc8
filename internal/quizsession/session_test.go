package quizsession_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
	"github.com/saulo-duarte/quizzai-lambda/internal/quizsession"
)

func questions(n int) []generation.QuizQuestion {
	qs := make([]generation.QuizQuestion, n)
	for i := range qs {
		qs[i] = generation.QuizQuestion{
			Question: fmt.Sprintf("Q%d", i),
			Options:  []string{"A", "B", "C", "D"},
			Answer:   "B",
		}
	}
	return qs
}

func newSession(t *testing.T, n int) *quizsession.Session {
	t.Helper()
	s, err := quizsession.NewSession("s-1", "user-1", questions(n))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	s := newSession(t, 3)
	if s.State() != quizsession.StateAnswering || s.CurrentIndex != 0 || s.Score != 0 || s.SelectedOption != "" {
		t.Errorf("initial state = %+v", s)
	}

	if _, err := quizsession.NewSession("s", "u", nil); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("empty questions: err = %v, want ErrValidation", err)
	}

	bad := questions(1)
	bad[0].Answer = "E"
	if _, err := quizsession.NewSession("s", "u", bad); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("answer outside options: err = %v, want ErrValidation", err)
	}
}

func TestSelectOption(t *testing.T) {
	t.Run("SecondSelectionIsIgnored", func(t *testing.T) {
		s := newSession(t, 2)

		if err := s.SelectOption("A"); err != nil {
			t.Fatalf("SelectOption failed: %v", err)
		}
		if err := s.SelectOption("B"); err != nil {
			t.Fatalf("second SelectOption failed: %v", err)
		}
		if s.SelectedOption != "A" {
			t.Errorf("selected = %q, want A", s.SelectedOption)
		}

		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
		if s.Score != 0 {
			t.Errorf("score = %d, the ignored correct pick must not count", s.Score)
		}
	})

	t.Run("UnknownOption", func(t *testing.T) {
		s := newSession(t, 1)
		if err := s.SelectOption("Z"); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
		if s.SelectedOption != "" {
			t.Errorf("selected = %q, want none", s.SelectedOption)
		}
	})

	t.Run("AfterCompletion", func(t *testing.T) {
		s := newSession(t, 1)
		_ = s.Advance()
		if err := s.SelectOption("B"); !errors.Is(err, quizsession.ErrCompleted) {
			t.Errorf("err = %v, want ErrCompleted", err)
		}
	})
}

func TestAdvance(t *testing.T) {
	t.Run("ScoresAndCompletes", func(t *testing.T) {
		s := newSession(t, 3)
		picks := []string{"B", "C", "B"}

		for i, pick := range picks {
			if err := s.SelectOption(pick); err != nil {
				t.Fatal(err)
			}
			if err := s.Advance(); err != nil {
				t.Fatal(err)
			}
			if s.SelectedOption != "" {
				t.Errorf("after advance %d selection not cleared", i)
			}
		}

		if s.State() != quizsession.StateCompleted {
			t.Fatalf("state = %s, want completed", s.State())
		}
		if s.Score != 2 || s.CurrentIndex != 3 {
			t.Errorf("score = %d index = %d, want 2 and 3", s.Score, s.CurrentIndex)
		}
		if err := s.Advance(); !errors.Is(err, quizsession.ErrCompleted) {
			t.Errorf("err = %v, want ErrCompleted", err)
		}
	})

	t.Run("WithoutSelectionCountsAsWrong", func(t *testing.T) {
		s := newSession(t, 2)
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance without selection failed: %v", err)
		}
		if s.CurrentIndex != 1 || s.Score != 0 {
			t.Errorf("index = %d score = %d", s.CurrentIndex, s.Score)
		}
	})
}

func TestRestart(t *testing.T) {
	states := map[string]func(*quizsession.Session){
		"Fresh":    func(*quizsession.Session) {},
		"Selected": func(s *quizsession.Session) { _ = s.SelectOption("B") },
		"Midway": func(s *quizsession.Session) {
			_ = s.SelectOption("B")
			_ = s.Advance()
			_ = s.SelectOption("A")
		},
		"Completed": func(s *quizsession.Session) {
			for s.State() == quizsession.StateAnswering {
				_ = s.Advance()
			}
		},
		"CompletedWithScore": func(s *quizsession.Session) {
			for s.State() == quizsession.StateAnswering {
				_ = s.SelectOption("B")
				_ = s.Advance()
			}
		},
	}

	for name, prepare := range states {
		t.Run(name, func(t *testing.T) {
			s := newSession(t, 3)
			prepare(s)

			s.Restart()

			if s.CurrentIndex != 0 || s.Score != 0 || s.SelectedOption != "" {
				t.Errorf("after restart: index = %d score = %d selected = %q", s.CurrentIndex, s.Score, s.SelectedOption)
			}
			if s.State() != quizsession.StateAnswering {
				t.Errorf("state = %s, want answering", s.State())
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	s := newSession(t, 2)

	snap := s.Snapshot()
	if snap.Question == nil || snap.Question.Question != "Q0" || snap.Total != 2 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Answer != "" || snap.Correct != nil {
		t.Error("answer revealed before a selection")
	}

	_ = s.SelectOption("C")
	snap = s.Snapshot()
	if snap.Answer != "B" || snap.Correct == nil || *snap.Correct || snap.SelectedOption != "C" {
		t.Errorf("after selection snapshot = %+v", snap)
	}

	_ = s.Advance()
	_ = s.Advance()
	snap = s.Snapshot()
	if snap.State != quizsession.StateCompleted || snap.Question != nil || snap.Score != 0 {
		t.Errorf("completed snapshot = %+v", snap)
	}
}
