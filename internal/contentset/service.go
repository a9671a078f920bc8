package contentset

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

type Service interface {
	Save(ctx context.Context, userID string, req SaveRequest) (*ContentSet, error)
	Exists(ctx context.Context, userID, name string, isQuiz bool) (bool, error)
	List(ctx context.Context, userID string) ([]ContentSet, error)
	Delete(ctx context.Context, userID string, setID uuid.UUID, isQuiz bool) error
	LoadQuestions(ctx context.Context, userID string, setID uuid.UUID) ([]generation.QuizQuestion, error)
	LoadFlashcards(ctx context.Context, userID string, setID uuid.UUID) ([]generation.Flashcard, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Save sanitizes the name, refuses duplicates and writes the set. The
// existence check and the write are not atomic; the unique index on the
// table settles a race with apperr.ErrConflict.
func (s *service) Save(ctx context.Context, userID string, req SaveRequest) (*ContentSet, error) {
	log := config.WithContext(ctx)

	name := SanitizeName(req.Name)
	if err := validateSave(name, req); err != nil {
		log.WithError(err).Warn("Rejected content set")
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, userID, name, req.IsQuiz)
	if err != nil {
		log.WithError(err).Error("Failed to check content set name")
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("a set named %q already exists: %w", name, apperr.ErrConflict)
	}

	set := &ContentSet{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		IsQuiz: req.IsQuiz,
	}
	if req.IsQuiz {
		rows, err := toSetQuizQuestions(set.ID, req.Questions)
		if err != nil {
			return nil, fmt.Errorf("encode questions: %v: %w", err, apperr.ErrStore)
		}
		set.Questions = rows
	} else {
		set.Flashcards = toSetFlashcards(set.ID, req.Flashcards)
	}

	if err := s.repo.Save(ctx, set); err != nil {
		log.WithError(err).Error("Failed to save content set")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"set_id":  set.ID.String(),
		"is_quiz": set.IsQuiz,
		"items":   len(set.Flashcards) + len(set.Questions),
	}).Info("Content set saved")
	return set, nil
}

func validateSave(name string, req SaveRequest) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("please enter a name for the set: %w", apperr.ErrValidation)
	}

	if req.IsQuiz {
		if len(req.Questions) == 0 || len(req.Flashcards) > 0 {
			return fmt.Errorf("a quiz set must contain quiz questions only: %w", apperr.ErrValidation)
		}
		for _, q := range req.Questions {
			if err := q.Validate(); err != nil {
				return err
			}
		}
		return nil
	}

	if len(req.Flashcards) == 0 || len(req.Questions) > 0 {
		return fmt.Errorf("a flashcard set must contain flashcards only: %w", apperr.ErrValidation)
	}
	for _, f := range req.Flashcards {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Exists(ctx context.Context, userID, name string, isQuiz bool) (bool, error) {
	return s.repo.Exists(ctx, userID, SanitizeName(name), isQuiz)
}

func (s *service) List(ctx context.Context, userID string) ([]ContentSet, error) {
	sets, err := s.repo.List(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list content sets")
		return nil, err
	}
	return sets, nil
}

func (s *service) Delete(ctx context.Context, userID string, setID uuid.UUID, isQuiz bool) error {
	log := config.WithContext(ctx).WithField("set_id", setID.String())

	if err := s.repo.Delete(ctx, userID, setID, isQuiz); err != nil {
		log.WithError(err).Warn("Failed to delete content set")
		return err
	}

	log.Info("Content set deleted")
	return nil
}

func (s *service) LoadQuestions(ctx context.Context, userID string, setID uuid.UUID) ([]generation.QuizQuestion, error) {
	return s.repo.LoadQuestions(ctx, userID, setID)
}

func (s *service) LoadFlashcards(ctx context.Context, userID string, setID uuid.UUID) ([]generation.Flashcard, error) {
	return s.repo.LoadFlashcards(ctx, userID, setID)
}
