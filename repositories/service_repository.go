package repositories

import (
	"context"

	"go-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository persists a shop's services and keeps the owning
// shop's serviceIds list in step with them
type ServiceRepository struct {
	client          *mongo.Client
	services        *mongo.Collection
	shops           *mongo.Collection
	useTransactions bool
}

// NewServiceRepository creates a ServiceRepository on db. With
// useTransactions set, the service write and the shop list update commit
// together; this needs a replica set.
func NewServiceRepository(db *mongo.Database, useTransactions bool) *ServiceRepository {
	return &ServiceRepository{
		client:          db.Client(),
		services:        db.Collection(ServicesCollection),
		shops:           db.Collection(ShopsCollection),
		useTransactions: useTransactions,
	}
}

// Create inserts the service and appends its ID to the shop's serviceIds
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	return r.withTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.services.InsertOne(ctx, service); err != nil {
			return translate(err)
		}
		res, err := r.shops.UpdateOne(ctx, bson.M{"_id": service.ShopID}, bson.M{"$push": bson.M{"serviceIds": service.ID}})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Delete removes the service and pulls its ID from the shop's serviceIds
func (r *ServiceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.withTransaction(ctx, func(ctx context.Context) error {
		var service models.Service
		if err := r.services.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&service); err != nil {
			return translate(err)
		}
		_, err := r.shops.UpdateOne(ctx, bson.M{"_id": service.ShopID}, bson.M{"$pull": bson.M{"serviceIds": service.ID}})
		return err
	})
}

// DeleteByShop removes every service of a shop
func (r *ServiceRepository) DeleteByShop(ctx context.Context, shopID primitive.ObjectID) error {
	_, err := r.services.DeleteMany(ctx, bson.M{"shopid": shopID})
	return err
}

func (r *ServiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var service models.Service
	if err := r.services.FindOne(ctx, bson.M{"_id": id}).Decode(&service); err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *ServiceRepository) FindByShop(ctx context.Context, shopID primitive.ObjectID) ([]models.Service, error) {
	return findAll[models.Service](ctx, r.services, bson.M{"shopid": shopID})
}

// FindByIDs returns the services whose IDs are listed; unknown IDs are skipped
func (r *ServiceRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Service, error) {
	if len(ids) == 0 {
		return []models.Service{}, nil
	}
	return findAll[models.Service](ctx, r.services, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *ServiceRepository) withTransaction(ctx context.Context, fn func(context.Context) error) error {
	if !r.useTransactions {
		return fn(ctx)
	}
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
