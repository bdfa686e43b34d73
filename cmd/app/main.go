package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/kafka"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := cmd.NewLogger(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(configs, logger); err != nil {
		logger.Fatal("Service stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uowFactory, closeStorage, err := cmd.NewUnitOfWorkFactory(configs)
	if err != nil {
		return err
	}
	defer func() { _ = closeStorage() }()

	publisher := kafka.NewEventPublisher(configs.KafkaHost, configs.KafkaEventsTopic)
	defer func() { _ = publisher.Close() }()

	app := cmd.NewCompositionRoot(configs, uowFactory, publisher, logger)

	router, err := app.CreateRouter()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("HTTP server listening",
			zap.String("port", configs.HTTPPort),
			zap.String("storage", configs.StorageDriver))
		if serveErr := router.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server")
		return router.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
