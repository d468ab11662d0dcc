package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"freezer/infra/mongodb"
	"freezer/infra/rabbitmq"
	"freezer/internal/consumers"
	"freezer/pkg/config"
	"freezer/pkg/events"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	zap.L().Info("Freezer Worker Service starting...")

	appConfig := config.Read()
	zap.L().Info("Worker config loaded",
		zap.String("serviceName", appConfig.ServiceName),
		zap.String("rabbitMQURL", appConfig.RabbitMQURL),
	)

	if appConfig.RabbitMQURL == "" {
		zap.L().Fatal("RABBITMQ_URL is required for worker service")
	}

	repository := mongodb.NewMongoRepository(
		appConfig.MongoURI,
		appConfig.MongoDatabase,
	)
	defer repository.Close()

	itemHandler := consumers.NewItemEventHandler(
		repository,
		zap.L(),
	)

	// Queue name: {service}.{domain}.{events}.{version}
	itemConsumerConfig := rabbitmq.ConsumerConfig{
		Exchange:      events.ItemExchange,
		QueueName:     "freezer.item.all.v1",
		RoutingKeys:   []string{"item.*.v1"},
		ServiceName:   appConfig.ServiceName,
		PrefetchCount: 10,
	}

	itemConsumer, err := rabbitmq.NewConsumer(appConfig.RabbitMQURL, itemConsumerConfig)
	if err != nil {
		zap.L().Fatal("Failed to create item consumer", zap.Error(err))
	}
	defer itemConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		zap.L().Info("Starting item event consumer...")
		if err := itemConsumer.Consume(ctx, itemHandler.HandleEvent); err != nil {
			if err != context.Canceled {
				zap.L().Error("Item consumer error", zap.Error(err))
			}
		}
	}()

	zap.L().Info("Worker service started successfully. Waiting for events...")

	<-sigChan
	zap.L().Info("Shutdown signal received, stopping worker service...")
	cancel()

	zap.L().Info("Worker service stopped gracefully")
}
