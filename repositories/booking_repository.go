package repositories

import (
	"context"
	"time"

	"go-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository persists bookings
type BookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a BookingRepository on db
func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection(BookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, booking)
	return translate(err)
}

func (r *BookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

// UpdateStatus moves the booking from status `from` to `to` only if it is
// still in `from`. A nil comment leaves the stored admin comment untouched.
// It returns ErrStaleStatus when the booking exists with another status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.BookingStatus, comment *string, at time.Time) (*models.Booking, error) {
	set := bson.M{"status": to, "updatedAt": at}
	if comment != nil {
		set["adminComment"] = *comment
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "status": from}, bson.M{"$set": set}, opts).Decode(&booking)
	if err == nil {
		return &booking, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	return nil, ErrStaleStatus
}

// FindByUser returns the user's bookings, optionally restricted to the
// given statuses
func (r *BookingRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, statuses ...models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"userId": userID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return findAll[models.Booking](ctx, r.collection, filter)
}

// FindByServices returns the bookings of the listed services ordered by
// date, then time
func (r *BookingRepository) FindByServices(ctx context.Context, serviceIDs []primitive.ObjectID) ([]models.Booking, error) {
	if len(serviceIDs) == 0 {
		return []models.Booking{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	return findAll[models.Booking](ctx, r.collection, bson.M{"serviceId": bson.M{"$in": serviceIDs}}, opts)
}
