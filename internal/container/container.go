package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizzai-lambda/internal/auth"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/contentset"
	"github.com/saulo-duarte/quizzai-lambda/internal/generation"
	"github.com/saulo-duarte/quizzai-lambda/internal/quizsession"
	"github.com/saulo-duarte/quizzai-lambda/internal/router"
	"github.com/saulo-duarte/quizzai-lambda/internal/transcript"
	"github.com/saulo-duarte/quizzai-lambda/internal/waitlist"
)

type Container struct {
	Settings config.Settings

	GenerationContainer  *generation.GenerationContainer
	ContentSetContainer  *contentset.ContentSetContainer
	QuizSessionContainer *quizsession.QuizSessionContainer
	WaitlistContainer    *waitlist.WaitlistContainer
	AuthHandler          *auth.Handler

	closers []func() error
}

func New(ctx context.Context) (*Container, error) {
	config.Init()
	auth.Init()
	log := config.WithContext(ctx)

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if err := config.Connect(ctx, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	models := append(contentset.Models(), waitlist.Models()...)
	if err := config.DB.WithContext(ctx).AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	c := &Container{Settings: settings}

	fetcher := transcript.NewYouTubeFetcher(settings.TranscriptLanguage)
	c.GenerationContainer, err = generation.NewGenerationContainer(ctx, settings, fetcher)
	if err != nil {
		return nil, fmt.Errorf("completion provider: %w", err)
	}

	store, err := c.sessionStore(ctx)
	if err != nil {
		return nil, err
	}

	c.ContentSetContainer = contentset.NewContentSetContainer(config.DB)
	c.QuizSessionContainer = quizsession.NewQuizSessionContainer(store, c.ContentSetContainer.Service)
	c.WaitlistContainer = waitlist.NewWaitlistContainer(config.DB)
	c.AuthHandler = auth.NewHandler(settings.CookieDomain)

	log.WithField("provider", settings.CompletionProvider).Info("Container ready")
	return c, nil
}

// sessionStore uses Redis when REDIS_ADDR is set and process memory otherwise.
func (c *Container) sessionStore(ctx context.Context) (quizsession.Store, error) {
	if c.Settings.RedisAddr == "" {
		config.WithContext(ctx).Warn("REDIS_ADDR not set, quiz sessions are kept in memory")
		return quizsession.NewMemoryStore(c.Settings.QuizSessionTTL), nil
	}

	rdb, err := quizsession.NewRedisClient(ctx, c.Settings.RedisAddr, c.Settings.RedisPassword)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.closers = append(c.closers, rdb.Close)
	return quizsession.NewRedisStore(rdb, c.Settings.QuizSessionTTL), nil
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		GenerationHandler:  c.GenerationContainer.Handler,
		ContentSetHandler:  c.ContentSetContainer.Handler,
		QuizSessionHandler: c.QuizSessionContainer.Handler,
		WaitlistHandler:    c.WaitlistContainer.Handler,
		AuthHandler:        c.AuthHandler,
		AllowedOrigins:     c.Settings.CORSAllowedOrigins,
	}
}

// Close releases the Redis client and the database pool.
func (c *Container) Close() error {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			return err
		}
	}
	if config.DB == nil {
		return nil
	}
	sqlDB, err := config.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
