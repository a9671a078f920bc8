package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/container"
	"github.com/saulo-duarte/quizzai-lambda/internal/router"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			config.Logger.Warnf(".env file not found, using process environment: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           router.New(c.RouterConfig()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.WithField("addr", srv.Addr).Info("API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
