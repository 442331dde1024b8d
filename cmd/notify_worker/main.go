package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"videotube/config"
	app "videotube/internal/application"
	"videotube/internal/domain/entity"
	pginfra "videotube/internal/infrastructure/postgres"
	"videotube/pkg/helpers"
)

// notify_worker consumes video.published events and fans them out into the
// notifications table, one row per subscriber of the publishing channel.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQVideoQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQVideoQueue)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer consumer.Close()

	svc := app.NewNotificationService(
		pginfra.NewNotificationRepository(pool),
		pginfra.NewSubscriptionRepository(pool),
		pginfra.NewUserRepository(pool),
		logger,
	)

	logger.Infof("notify worker listening on queue=%s", cfg.RabbitMQVideoQueue)
	err = consumer.Consume(ctx, func(ctx context.Context, body []byte) error {
		var evt entity.VideoPublishedEvent
		if err := json.Unmarshal(body, &evt); err != nil {
			logger.WithError(err).Warn("bad message, dropping")
			return nil // ack malformed payloads instead of requeue-looping
		}
		return svc.FanOutVideoPublished(ctx, evt)
	})
	if err != nil && ctx.Err() == nil {
		logger.WithError(err).Error("consumer stopped")
	}
	logger.Info("notify worker exited")
}
