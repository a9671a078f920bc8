package router_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizzai-lambda/internal/auth"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/contentset"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
	"github.com/saulo-duarte/quizzai-lambda/internal/quizsession"
	"github.com/saulo-duarte/quizzai-lambda/internal/router"
	"github.com/saulo-duarte/quizzai-lambda/internal/waitlist"
)

type cannedProvider struct{ reply string }

func (p cannedProvider) Complete(context.Context, string, string) (string, error) {
	return p.reply, nil
}

type noTranscripts struct{}

func (noTranscripts) Fetch(context.Context, string) (string, error) { return "", nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("JWT_SECRET", "router-test-secret")
	auth.Init()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.Open(config.DriverSQLite, dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(append(contentset.Models(), waitlist.Models()...)...))

	sets := contentset.NewContentSetContainer(db)
	provider := cannedProvider{reply: `{"flashcards":[{"front":"Powerhouse?","back":"Mitochondria"}]}`}

	return router.New(router.RouterConfig{
		GenerationHandler:  generation.NewHandler(generation.NewService(provider, noTranscripts{})),
		ContentSetHandler:  sets.Handler,
		QuizSessionHandler: quizsession.NewQuizSessionContainer(quizsession.NewMemoryStore(time.Minute), sets.Service).Handler,
		WaitlistHandler:    waitlist.NewWaitlistContainer(db).Handler,
		AuthHandler:        auth.NewHandler(""),
		AllowedOrigins:     []string{"http://localhost:3000"},
	})
}

func TestRouter(t *testing.T) {
	h := newTestRouter(t)
	token, err := auth.GenerateJWT("user-1", "user", time.Hour)
	require.NoError(t, err)

	do := func(method, target, body, bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Health", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("ProtectedRoutesNeedToken", func(t *testing.T) {
		for _, target := range []string{"/generate", "/sets", "/quiz-sessions"} {
			rec := do(http.MethodPost, target, `{}`, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
			assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String(), target)
		}
	})

	t.Run("GenerateWithToken", func(t *testing.T) {
		rec := do(http.MethodPost, "/generate", `{"text":"cells","outputType":"Flashcards","inputType":"text"}`, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `[{"front":"Powerhouse?","back":"Mitochondria"}]`, rec.Body.String())
	})

	t.Run("SetsWithToken", func(t *testing.T) {
		rec := do(http.MethodGet, "/sets", "", token)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("WaitlistIsPublic", func(t *testing.T) {
		rec := do(http.MethodPost, "/waitlist", `{"name":"Ada","email":"ada@example.com"}`, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("LogoutClearsCookie", func(t *testing.T) {
		rec := do(http.MethodPost, "/auth/logout", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "jwt=")
	})

	t.Run("CorsPreflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/sets", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
