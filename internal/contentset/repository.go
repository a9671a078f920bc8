package contentset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

type Repository interface {
	Exists(ctx context.Context, userID, name string, isQuiz bool) (bool, error)
	Save(ctx context.Context, set *ContentSet) error
	List(ctx context.Context, userID string) ([]ContentSet, error)
	Delete(ctx context.Context, userID string, setID uuid.UUID, isQuiz bool) error
	LoadQuestions(ctx context.Context, userID string, setID uuid.UUID) ([]generation.QuizQuestion, error)
	LoadFlashcards(ctx context.Context, userID string, setID uuid.UUID) ([]generation.Flashcard, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, apperr.ErrStore)
}

func (r *repository) Exists(ctx context.Context, userID, name string, isQuiz bool) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ContentSet{}).
		Where("user_id = ? AND is_quiz = ? AND name = ?", userID, isQuiz, name).
		Count(&count).Error
	if err != nil {
		return false, storeError("check set name", err)
	}
	return count > 0, nil
}

// Save writes the set and its items in one transaction. A unique violation on
// the set row becomes apperr.ErrConflict and no item is written.
func (r *repository) Save(ctx context.Context, set *ContentSet) error {
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Flashcards", "Questions").Create(set).Error; err != nil {
			return err
		}
		if len(set.Flashcards) > 0 {
			if err := tx.Create(&set.Flashcards).Error; err != nil {
				return err
			}
		}
		if len(set.Questions) > 0 {
			if err := tx.Create(&set.Questions).Error; err != nil {
				return err
			}
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("a set named %q already exists: %w", set.Name, apperr.ErrConflict)
	default:
		return storeError("save set", err)
	}
}

func (r *repository) List(ctx context.Context, userID string) ([]ContentSet, error) {
	var sets []ContentSet
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&sets).Error; err != nil {
		return nil, storeError("list sets", err)
	}
	return sets, nil
}

// Delete removes the set and its items. Items are deleted explicitly because
// SQLite does not enforce the cascade unless foreign keys are switched on.
func (r *repository) Delete(ctx context.Context, userID string, setID uuid.UUID, isQuiz bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ? AND is_quiz = ?", setID, userID, isQuiz).Delete(&ContentSet{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		if isQuiz {
			return tx.Where("set_id = ?", setID).Delete(&SetQuizQuestion{}).Error
		}
		return tx.Where("set_id = ?", setID).Delete(&SetFlashcard{}).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		return fmt.Errorf("set %s: %w", setID, apperr.ErrNotFound)
	default:
		return storeError("delete set", err)
	}
}

func (r *repository) findOwned(ctx context.Context, userID string, setID uuid.UUID, isQuiz bool) error {
	var set ContentSet
	err := r.db.WithContext(ctx).
		Select("id").
		First(&set, "id = ? AND user_id = ? AND is_quiz = ?", setID, userID, isQuiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("set %s: %w", setID, apperr.ErrNotFound)
	}
	if err != nil {
		return storeError("find set", err)
	}
	return nil
}

func (r *repository) LoadQuestions(ctx context.Context, userID string, setID uuid.UUID) ([]generation.QuizQuestion, error) {
	if err := r.findOwned(ctx, userID, setID, true); err != nil {
		return nil, err
	}

	var rows []SetQuizQuestion
	if err := r.db.WithContext(ctx).
		Where("set_id = ?", setID).
		Order("order_index ASC").
		Find(&rows).Error; err != nil {
		return nil, storeError("load questions", err)
	}

	questions := make([]generation.QuizQuestion, 0, len(rows))
	for _, row := range rows {
		q, err := row.toQuizQuestion()
		if err != nil {
			return nil, storeError("decode question", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *repository) LoadFlashcards(ctx context.Context, userID string, setID uuid.UUID) ([]generation.Flashcard, error) {
	if err := r.findOwned(ctx, userID, setID, false); err != nil {
		return nil, err
	}

	var rows []SetFlashcard
	if err := r.db.WithContext(ctx).
		Where("set_id = ?", setID).
		Order("order_index ASC").
		Find(&rows).Error; err != nil {
		return nil, storeError("load flashcards", err)
	}

	cards := make([]generation.Flashcard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, row.toFlashcard())
	}
	return cards, nil
}
