package repositories

import (
	"context"

	"go-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository persists shop reviews
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a ReviewRepository on db
func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(ReviewsCollection)}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, review)
	return translate(err)
}

// FindByShop returns the shop's reviews, newest first
func (r *ReviewRepository) FindByShop(ctx context.Context, shopID primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return findAll[models.Review](ctx, r.collection, bson.M{"shopId": shopID}, opts)
}

// SummarizeRatings returns the review count and rating sum per shop. With
// no shop IDs every shop is summarized. Shops without reviews are absent.
func (r *ReviewRepository) SummarizeRatings(ctx context.Context, shopIDs ...primitive.ObjectID) (map[primitive.ObjectID]models.RatingSummary, error) {
	pipeline := mongo.Pipeline{}
	if len(shopIDs) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"shopId": bson.M{"$in": shopIDs}}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":   "$shopId",
		"count": bson.M{"$sum": 1},
		"sum":   bson.M{"$sum": "$rating"},
	}}})

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := make(map[primitive.ObjectID]models.RatingSummary)
	for cursor.Next(ctx) {
		var s models.RatingSummary
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		summaries[s.ShopID] = s
	}
	return summaries, cursor.Err()
}
