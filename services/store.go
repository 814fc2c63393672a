package services

import (
	"context"
	"time"

	"go-booking/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The store interfaces are satisfied by the MongoDB repositories and by the
// in-memory stores in repositories/memstore. Lookups of a missing document
// return repositories.ErrNotFound.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
}

type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type ShopStore interface {
	Create(ctx context.Context, shop *models.Shop) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shop, error)
	FindByAdmin(ctx context.Context, adminID primitive.ObjectID) (*models.Shop, error)
	FindAll(ctx context.Context) ([]models.Shop, error)
	IncrementVisits(ctx context.Context, id primitive.ObjectID) (*models.Shop, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ServiceStore interface {
	Create(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByShop(ctx context.Context, shopID primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	FindByShop(ctx context.Context, shopID primitive.ObjectID) ([]models.Service, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Service, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.BookingStatus, comment *string, at time.Time) (*models.Booking, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID, statuses ...models.BookingStatus) ([]models.Booking, error)
	FindByServices(ctx context.Context, serviceIDs []primitive.ObjectID) ([]models.Booking, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindByShop(ctx context.Context, shopID primitive.ObjectID) ([]models.Review, error)
	SummarizeRatings(ctx context.Context, shopIDs ...primitive.ObjectID) (map[primitive.ObjectID]models.RatingSummary, error)
}

// Stores bundles every store a service may need
type Stores struct {
	Users    UserStore
	Admins   AdminStore
	Shops    ShopStore
	Services ServiceStore
	Bookings BookingStore
	Reviews  ReviewStore
}

// ShopListingCache caches the ranked public shop listing. Implementations
// log their own failures; a miss is never an error.
type ShopListingCache interface {
	Load(ctx context.Context) ([]models.ShopListing, bool)
	Store(ctx context.Context, listings []models.ShopListing)
	Invalidate(ctx context.Context)
}

// BookingNotifier tells a booking's owner that its status changed
type BookingNotifier interface {
	SendBookingStatusEmail(toEmail, name string, booking models.BookingView) error
}

type noopCache struct{}

func (noopCache) Load(context.Context) ([]models.ShopListing, bool) { return nil, false }
func (noopCache) Store(context.Context, []models.ShopListing)       {}
func (noopCache) Invalidate(context.Context)                        {}

func cacheOrNoop(c ShopListingCache) ShopListingCache {
	if c == nil {
		return noopCache{}
	}
	return c
}
