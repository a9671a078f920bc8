package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quizzai-lambda/internal/auth"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/contentset"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
	"github.com/saulo-duarte/quizzai-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizzai-lambda/internal/quizsession"
	"github.com/saulo-duarte/quizzai-lambda/internal/waitlist"
)

type RouterConfig struct {
	GenerationHandler  *generation.Handler
	ContentSetHandler  *contentset.Handler
	QuizSessionHandler *quizsession.Handler
	WaitlistHandler    *waitlist.Handler
	AuthHandler        *auth.Handler
	AllowedOrigins     []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", Health)

	r.Post("/auth/logout", cfg.AuthHandler.Logout)
	r.Mount("/waitlist", waitlist.Routes(cfg.WaitlistHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/generate", generation.Routes(cfg.GenerationHandler))
		r.Mount("/sets", contentset.Routes(cfg.ContentSetHandler))
		r.Mount("/quiz-sessions", quizsession.Routes(cfg.QuizSessionHandler))
	})
	return r
}

func Health(w http.ResponseWriter, _ *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
