package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	wishlisterrors "smarttour/internal/wishlist/errors"
	"smarttour/pkg/config"
	mongotx "smarttour/pkg/db/mongo"
	"smarttour/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Wishlists"
)

type WishlistRepository interface {
	FindByUser(ctx context.Context, userID string) (*model.Wishlist, error)
	Save(ctx context.Context, wishlist *model.Wishlist) error
	Delete(ctx context.Context, userID string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoWishlistRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoWishlistRepository(cfg *config.Config) WishlistRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoWishlistRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoWishlistRepository) FindByUser(ctx context.Context, userID string) (*model.Wishlist, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var wishlist model.Wishlist
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&wishlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, wishlisterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wishlist: %w", err)
	}

	return &wishlist, nil
}

// Save replaces the user's wishlist document, creating it when missing.
func (r *mongoWishlistRepository) Save(ctx context.Context, wishlist *model.Wishlist) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	wishlist.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if wishlist.Items == nil {
		wishlist.Items = []model.WishlistItem{}
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": wishlist.UserID}, wishlist, opts); err != nil {
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	return nil
}

func (r *mongoWishlistRepository) Delete(ctx context.Context, userID string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}
	if result.DeletedCount == 0 {
		return wishlisterrors.ErrNotFound
	}
	return nil
}

func (r *mongoWishlistRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
