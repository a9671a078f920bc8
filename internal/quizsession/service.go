package quizsession

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

// QuestionLoader reads the questions of a saved quiz set.
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, userID string, setID uuid.UUID) ([]generation.QuizQuestion, error)
}

// StartRequest starts a session from a saved set or from inline questions,
// never both.
type StartRequest struct {
	SetID     string                    `json:"setId,omitempty"`
	Questions []generation.QuizQuestion `json:"questions,omitempty"`
}

type Service interface {
	Start(ctx context.Context, userID string, req StartRequest) (Snapshot, error)
	Get(ctx context.Context, userID, id string) (Snapshot, error)
	Select(ctx context.Context, userID, id, option string) (Snapshot, error)
	Advance(ctx context.Context, userID, id string) (Snapshot, error)
	Restart(ctx context.Context, userID, id string) (Snapshot, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	store  Store
	loader QuestionLoader
}

func NewService(store Store, loader QuestionLoader) Service {
	return &service{store: store, loader: loader}
}

func (s *service) Start(ctx context.Context, userID string, req StartRequest) (Snapshot, error) {
	log := config.WithContext(ctx)

	questions, err := s.resolveQuestions(ctx, userID, req)
	if err != nil {
		return Snapshot{}, err
	}

	session, err := NewSession(uuid.NewString(), userID, questions)
	if err != nil {
		return Snapshot{}, err
	}
	session.SetID = req.SetID

	if err := s.store.Put(ctx, session); err != nil {
		log.WithError(err).Error("Failed to store quiz session")
		return Snapshot{}, err
	}

	log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"questions":  len(questions),
	}).Info("Quiz session started")
	return session.Snapshot(), nil
}

func (s *service) resolveQuestions(ctx context.Context, userID string, req StartRequest) ([]generation.QuizQuestion, error) {
	switch {
	case req.SetID != "" && len(req.Questions) > 0:
		return nil, fmt.Errorf("provide either setId or questions, not both: %w", apperr.ErrValidation)
	case req.SetID != "":
		setID, err := uuid.Parse(req.SetID)
		if err != nil {
			return nil, fmt.Errorf("invalid set id: %w", apperr.ErrValidation)
		}
		return s.loader.LoadQuestions(ctx, userID, setID)
	case len(req.Questions) > 0:
		return req.Questions, nil
	default:
		return nil, fmt.Errorf("provide a setId or questions: %w", apperr.ErrValidation)
	}
}

// load returns the session only if it belongs to userID. Another user's
// session is reported as not found.
func (s *service) load(ctx context.Context, userID, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("session %s: %w", id, apperr.ErrNotFound)
	}
	return session, nil
}

// apply runs one command and writes the session back. Two commands racing on
// the same session resolve as last write wins.
func (s *service) apply(ctx context.Context, userID, id string, cmd func(*Session) error) (Snapshot, error) {
	session, err := s.load(ctx, userID, id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := cmd(session); err != nil {
		return Snapshot{}, err
	}
	if err := s.store.Put(ctx, session); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to store quiz session")
		return Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *service) Get(ctx context.Context, userID, id string) (Snapshot, error) {
	session, err := s.load(ctx, userID, id)
	if err != nil {
		return Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *service) Select(ctx context.Context, userID, id, option string) (Snapshot, error) {
	return s.apply(ctx, userID, id, func(session *Session) error {
		return session.SelectOption(option)
	})
}

func (s *service) Advance(ctx context.Context, userID, id string) (Snapshot, error) {
	snap, err := s.apply(ctx, userID, id, (*Session).Advance)
	if err == nil && snap.State == StateCompleted {
		config.WithContext(ctx).WithFields(logrus.Fields{
			"session_id": id,
			"score":      snap.Score,
			"total":      snap.Total,
		}).Info("Quiz session completed")
	}
	return snap, err
}

func (s *service) Restart(ctx context.Context, userID, id string) (Snapshot, error) {
	return s.apply(ctx, userID, id, func(session *Session) error {
		session.Restart()
		return nil
	})
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.load(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
