package waitlist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

type Service interface {
	Join(ctx context.Context, req JoinRequest) (*Entry, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Join stores a sign-up. Emails are compared case-insensitively.
func (s *service) Join(ctx context.Context, req JoinRequest) (*Entry, error) {
	log := config.WithContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	entry := &Entry{ID: uuid.New(), Name: req.Name, Email: req.Email}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to add waitlist entry")
		return nil, err
	}

	log.WithField("entry_id", entry.ID.String()).Info("Waitlist entry added")
	return entry, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required: %w", strings.ToLower(fe.Field()), apperr.ErrValidation)
		case "email":
			return fmt.Errorf("please enter a valid email: %w", apperr.ErrValidation)
		default:
			return fmt.Errorf("%s is too long: %w", strings.ToLower(fe.Field()), apperr.ErrValidation)
		}
	}
	return fmt.Errorf("%v: %w", err, apperr.ErrValidation)
}
