package main

import (
	"context"
	"errors"

	"smarttour/internal/health"
	"smarttour/internal/wishlist/events"
	"smarttour/internal/wishlist/handler"
	"smarttour/internal/wishlist/repository"
	"smarttour/internal/wishlist/service"
	"smarttour/internal/wishlist/validator"
	"smarttour/pkg/app"
	"smarttour/pkg/config"
	"smarttour/pkg/kafka"
	kafkamw "smarttour/pkg/kafka/middleware"
)

const ServiceName = "wishlist"

func main() {
	cfg := config.Load(ServiceName, config.WithDefaultPort("8081"))
	cfg.SetMongo()

	cfg.Log.Info("Starting Wishlist service")
	serverApp := app.NewApplication(cfg)

	wishlistService := initServices(cfg)
	if cfg.KafkaEnabled {
		startConsumer(cfg, serverApp, wishlistService)
	}

	serverApp.SetApp(
		handler.NewWishlistHandler(wishlistService, cfg.Log),
		map[string]health.Check{"mongo": cfg.Client.Ping},
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.WishlistService {
	wishlistValidator := validator.NewWishlistValidator(cfg.Log)
	wishlistRepo := repository.NewMongoWishlistRepository(cfg)
	return service.NewWishlistService(wishlistRepo, wishlistValidator, cfg)
}

func startConsumer(cfg *config.Config, serverApp *app.Application, wishlists service.WishlistService) {
	consumer, err := kafka.NewConsumer(
		cfg.Kafka,
		cfg.BookingEventsTopic,
		cfg.WishlistConsumerGroup,
		cfg.BookingEventsDLQTopic,
		events.NewBookingConfirmedHandler(wishlists, cfg.Log),
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafkamw.LoggingConsumerMiddleware(cfg.Log))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			cfg.Log.Error("Booking events consumer stopped", "error", err)
		}
	}()

	serverApp.OnShutdown(func(context.Context) {
		cancel()
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka consumer", "error", err)
		}
	})

	cfg.Log.Info("Booking events consumer started",
		"topic", cfg.BookingEventsTopic,
		"group_id", cfg.WishlistConsumerGroup,
	)
}
