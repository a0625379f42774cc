package repository

import (
	"context"
	"errors"
	"fmt"

	bookingserrors "smarttour/internal/bookings/errors"
	"smarttour/pkg/config"
	mongotx "smarttour/pkg/db/mongo"
	"smarttour/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TourCollectionName = "Tours"
)

type TourRepository interface {
	FindAll(ctx context.Context) ([]model.Tour, error)
	FindByID(ctx context.Context, id string) (*model.Tour, error)
	Upsert(ctx context.Context, tour *model.Tour) error
}

type mongoTourRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoTourRepository(cfg *config.Config) TourRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTourRepository{
		cfg:        cfg,
		collection: db.Collection(TourCollectionName),
	}
}

func (r *mongoTourRepository) FindAll(ctx context.Context) ([]model.Tour, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find tours: %w", err)
	}
	defer cursor.Close(ctx)

	tours := []model.Tour{}
	if err = cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}

	return tours, nil
}

func (r *mongoTourRepository) FindByID(ctx context.Context, id string) (*model.Tour, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var tour model.Tour
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tour)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to find tour: %w", err)
	}

	return &tour, nil
}

func (r *mongoTourRepository) Upsert(ctx context.Context, tour *model.Tour) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": tour.ID}, tour, opts); err != nil {
		return fmt.Errorf("failed to upsert tour %s: %w", tour.ID, err)
	}
	return nil
}
