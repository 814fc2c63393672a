package repositories

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// index on shops.adminId backs the one-shop-per-admin rule.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		AdminsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ShopsCollection: {
			{Keys: bson.D{{Key: "adminId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ServicesCollection: {
			{Keys: bson.D{{Key: "shopid", Value: 1}}},
		},
		BookingsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "serviceId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}}},
		},
		ReviewsCollection: {
			{Keys: bson.D{{Key: "shopId", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	log.Println("Database indexes setup complete")
	return nil
}
