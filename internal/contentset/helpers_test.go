package contentset_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/contentset"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

// newTestDB opens a private in-memory SQLite database with the content set
// tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.Open(config.DriverSQLite, dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(contentset.Models()...))
	return db
}

func sampleFlashcards(n int) []generation.Flashcard {
	cards := make([]generation.Flashcard, n)
	for i := range cards {
		cards[i] = generation.Flashcard{
			Front: fmt.Sprintf("Term %d", i),
			Back:  fmt.Sprintf("Definition %d", i),
		}
	}
	return cards
}

func sampleQuestions(n int) []generation.QuizQuestion {
	questions := make([]generation.QuizQuestion, n)
	for i := range questions {
		opts := []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi"}
		questions[i] = generation.QuizQuestion{
			Question: fmt.Sprintf("Which organelle %d?", i),
			Options:  opts,
			Answer:   opts[(i+2)%len(opts)],
		}
	}
	return questions
}
