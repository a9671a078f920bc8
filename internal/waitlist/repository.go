package waitlist

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	err := r.db.WithContext(ctx).Create(e).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s is already on the waitlist: %w", e.Email, apperr.ErrConflict)
	default:
		return fmt.Errorf("create waitlist entry: %v: %w", err, apperr.ErrStore)
	}
}
