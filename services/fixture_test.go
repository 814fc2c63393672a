package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-booking/models"
	"go-booking/repositories/memstore"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

type fixture struct {
	t      *testing.T
	ctx    context.Context
	mem    *memstore.Store
	stores Stores
}

func newFixture(t *testing.T) *fixture {
	mem := memstore.New()
	return &fixture{
		t:   t,
		ctx: context.Background(),
		mem: mem,
		stores: Stores{
			Users:    mem.Users,
			Admins:   mem.Admins,
			Shops:    mem.Shops,
			Services: mem.Services,
			Bookings: mem.Bookings,
			Reviews:  mem.Reviews,
		},
	}
}

func (f *fixture) addUser(name string) models.UserIdentity {
	user := &models.User{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(f.t, f.mem.Users.Create(f.ctx, user))
	return models.UserIdentity{UserID: user.ID}
}

func (f *fixture) addShop(name string) (models.AdminIdentity, *models.Shop) {
	admin := models.AdminIdentity{AdminID: primitive.NewObjectID()}
	shop, err := NewShopService(f.stores, nil).CreateShop(f.ctx, admin, models.CreateShopRequest{Name: name, Location: "Main St"})
	require.NoError(f.t, err)
	return admin, shop
}

func (f *fixture) addService(admin models.AdminIdentity, title string) *models.Service {
	price := 25.0
	service, err := NewCatalogService(f.stores, nil).CreateService(f.ctx, admin, models.CreateServiceRequest{Title: title, Price: &price})
	require.NoError(f.t, err)
	return service
}

func (f *fixture) bookings() *BookingService {
	svc := NewBookingService(f.stores, nil, time.UTC)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func (f *fixture) book(user models.UserIdentity, service *models.Service) *models.Booking {
	booking, err := f.bookings().CreateBooking(f.ctx, user, models.CreateBookingRequest{
		ServiceID: service.ID.Hex(),
		Date:      "2026-10-20",
		Time:      "10:30",
	})
	require.NoError(f.t, err)
	return booking
}

func (f *fixture) advance(admin models.AdminIdentity, booking *models.Booking, statuses ...models.BookingStatus) {
	for _, status := range statuses {
		_, err := f.bookings().UpdateStatus(f.ctx, admin, booking.ID.Hex(), models.UpdateBookingStatusRequest{Status: status})
		require.NoError(f.t, err)
	}
}

// recordingCache is a ShopListingCache that remembers what happened to it
type recordingCache struct {
	mu          sync.Mutex
	listings    []models.ShopListing
	stored      bool
	invalidated int
}

func (c *recordingCache) Load(context.Context) ([]models.ShopListing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listings, c.stored
}

func (c *recordingCache) Store(_ context.Context, listings []models.ShopListing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings, c.stored = listings, true
}

func (c *recordingCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listings, c.stored = nil, false
	c.invalidated++
}

type sentEmail struct {
	to, name string
	booking  models.BookingView
}

type recordingNotifier struct {
	sent []sentEmail
}

func (n *recordingNotifier) SendBookingStatusEmail(to, name string, booking models.BookingView) error {
	n.sent = append(n.sent, sentEmail{to: to, name: name, booking: booking})
	return nil
}
