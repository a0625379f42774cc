package main

import (
	"context"
	"time"

	"smarttour/internal/bookings/catalog"
	"smarttour/internal/bookings/repository"
	mongoMigration "smarttour/internal/migrations/mongo"
	"smarttour/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job")
	migrateMongo(ctx, cfg)
	seedTours(ctx, cfg)
	cfg.Log.Info("Migration completed successfully")
}

func migrateMongo(ctx context.Context, cfg *config.Config) {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.Log); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}
}

func seedTours(ctx context.Context, cfg *config.Config) {
	repo := repository.NewMongoTourRepository(cfg)
	tours := catalog.DefaultTours()
	for i := range tours {
		if err := repo.Upsert(ctx, &tours[i]); err != nil {
			cfg.Log.Fatal("Failed to seed tour", "tour_id", tours[i].ID, "error", err)
		}
	}
	cfg.Log.Info("Tour catalog seeded", "count", len(tours))
}
