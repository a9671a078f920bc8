package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey   = errors.New("completion API key is not configured")
	ErrUnknownProvider = errors.New("unknown completion provider")
	ErrUnknownDriver   = errors.New("unknown database driver")
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Settings struct {
	Env  string
	Port string

	DatabaseDriver string
	DatabaseDSN    string

	CompletionProvider string
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIBaseURL      string
	GeminiAPIKey       string
	GeminiModel        string

	TranscriptLanguage string

	RedisAddr      string
	RedisPassword  string
	QuizSessionTTL time.Duration

	CORSAllowedOrigins []string
	CookieDomain       string
}

func (s Settings) IsProduction() bool {
	return s.Env == "production"
}

// LoadSettings reads the environment. A missing key for the selected completion
// provider is reported here so the process fails at startup instead of on the
// first request.
func LoadSettings() (Settings, error) {
	s := Settings{
		Env:                getenv("APP_ENV", "development"),
		Port:               getenv("PORT", "8080"),
		DatabaseDriver:     strings.ToLower(getenv("DATABASE_DRIVER", DriverPostgres)),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		CompletionProvider: strings.ToLower(getenv("COMPLETION_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:        getenv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:       strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:        getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		TranscriptLanguage: getenv("TRANSCRIPT_LANGUAGE", "en"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		CookieDomain:       os.Getenv("COOKIE_DOMAIN"),
	}

	ttl, err := time.ParseDuration(getenv("QUIZ_SESSION_TTL", "2h"))
	if err != nil {
		return s, fmt.Errorf("invalid QUIZ_SESSION_TTL: %w", err)
	}
	s.QuizSessionTTL = ttl

	for _, origin := range strings.Split(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			s.CORSAllowedOrigins = append(s.CORSAllowedOrigins, origin)
		}
	}

	switch s.CompletionProvider {
	case ProviderOpenAI:
		if s.OpenAIAPIKey == "" {
			return s, fmt.Errorf("OPENAI_API_KEY: %w", ErrMissingAPIKey)
		}
	case ProviderGemini:
		if s.GeminiAPIKey == "" {
			return s, fmt.Errorf("GEMINI_API_KEY: %w", ErrMissingAPIKey)
		}
	default:
		return s, fmt.Errorf("%q: %w", s.CompletionProvider, ErrUnknownProvider)
	}

	switch s.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return s, fmt.Errorf("%q: %w", s.DatabaseDriver, ErrUnknownDriver)
	}

	return s, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
