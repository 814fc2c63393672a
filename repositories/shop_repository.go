package repositories

import (
	"context"

	"go-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ShopRepository persists shops
type ShopRepository struct {
	collection *mongo.Collection
}

// NewShopRepository creates a ShopRepository on db
func NewShopRepository(db *mongo.Database) *ShopRepository {
	return &ShopRepository{collection: db.Collection(ShopsCollection)}
}

// Create inserts the shop. A second shop for the same admin yields ErrDuplicate.
func (r *ShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	if shop.ID.IsZero() {
		shop.ID = primitive.NewObjectID()
	}
	if shop.ServiceIDs == nil {
		shop.ServiceIDs = []primitive.ObjectID{}
	}
	_, err := r.collection.InsertOne(ctx, shop)
	return translate(err)
}

func (r *ShopRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	var shop models.Shop
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&shop); err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *ShopRepository) FindByAdmin(ctx context.Context, adminID primitive.ObjectID) (*models.Shop, error) {
	var shop models.Shop
	if err := r.collection.FindOne(ctx, bson.M{"adminId": adminID}).Decode(&shop); err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

// FindAll returns every shop in natural order
func (r *ShopRepository) FindAll(ctx context.Context) ([]models.Shop, error) {
	return findAll[models.Shop](ctx, r.collection, bson.M{})
}

// IncrementVisits atomically adds one to the shop's visit counter and
// returns the updated document
func (r *ShopRepository) IncrementVisits(ctx context.Context, id primitive.ObjectID) (*models.Shop, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var shop models.Shop
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"visits": 1}}, opts).Decode(&shop)
	if err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *ShopRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
