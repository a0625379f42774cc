package main

import (
	"context"

	"smarttour/internal/bookings/events"
	"smarttour/internal/bookings/handler"
	"smarttour/internal/bookings/repository"
	"smarttour/internal/bookings/service"
	"smarttour/internal/bookings/validator"
	"smarttour/internal/health"
	"smarttour/pkg/app"
	"smarttour/pkg/config"
	"smarttour/pkg/kafka"
	kafkamw "smarttour/pkg/kafka/middleware"
	"smarttour/pkg/sealer"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")
	serverApp := app.NewApplication(cfg)

	publisher := initPublisher(cfg, serverApp)
	sessionService, bookingService := initServices(cfg, publisher)
	serverApp.OnShutdown(func(ctx context.Context) {
		sessionService.Close()
	})

	serverApp.SetApp(
		handler.NewBookingHandler(sessionService, bookingService, cfg.Log),
		map[string]health.Check{"mongo": cfg.Client.Ping},
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, publisher service.EventPublisher) (service.SessionService, service.BookingService) {
	tokenSealer, err := sealer.New(cfg.SessionSealKey)
	if err != nil {
		cfg.Log.Fatal("Invalid session seal key", "error", err)
	}

	bookingValidator := validator.NewBookingValidator(cfg.Log)
	tourRepo := repository.NewMongoTourRepository(cfg)
	bookingRepo := repository.NewMongoBookingRepository(cfg)

	sessionService := service.NewSessionService(
		tourRepo,
		bookingRepo,
		bookingValidator,
		publisher,
		tokenSealer,
		cfg,
	)
	bookingService := service.NewBookingService(tourRepo, bookingRepo, cfg)

	cfg.Log.Info("Booking services initialized", "database", cfg.MongoDatabaseName)
	return sessionService, bookingService
}

func initPublisher(cfg *config.Config, serverApp *app.Application) service.EventPublisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return events.NewNoopPublisher(cfg.Log)
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.BookingEventsTopic, cfg.BookingEventsDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafkamw.LoggingProducerMiddleware(cfg.Log))

	serverApp.OnShutdown(func(ctx context.Context) {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	})

	cfg.Log.Info("Kafka producer initialized", "topic", producer.Topic())
	return events.NewKafkaPublisher(producer, cfg.Log)
}
