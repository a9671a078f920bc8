package generation_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
)

// stubProvider returns a fixed completion and records what it was sent.
type stubProvider struct {
	mu     sync.Mutex
	reply  string
	err    error
	calls  int
	system string
	user   string
}

func (p *stubProvider) Complete(_ context.Context, system, user string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.system, p.user = system, user
	return p.reply, p.err
}

type stubFetcher struct {
	text  string
	err   error
	calls int
	url   string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.calls++
	f.url = url
	return f.text, f.err
}

func canonicalFlashcards(n int) []generation.Flashcard {
	cards := make([]generation.Flashcard, n)
	for i := range cards {
		cards[i] = generation.Flashcard{
			Front: fmt.Sprintf("What is fact %d about mitochondria?", i+1),
			Back:  fmt.Sprintf("Mitochondria fact %d.", i+1),
		}
	}
	return cards
}

func canonicalQuizzes(n int) []generation.QuizQuestion {
	questions := make([]generation.QuizQuestion, n)
	for i := range questions {
		opts := []string{"ATP", "DNA", "RNA", "Glucose"}
		questions[i] = generation.QuizQuestion{
			Question: fmt.Sprintf("Question %d: what do mitochondria produce?", i+1),
			Options:  opts,
			Answer:   opts[i%len(opts)],
		}
	}
	return questions
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
