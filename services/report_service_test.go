package services

import (
	"testing"

	"go-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListShopsRanksAndCaches(t *testing.T) {
	f := newFixture(t)
	unratedAdmin, _ := f.addShop("Quiet")
	lowAdmin, low := f.addShop("Low")
	highAdmin, high := f.addShop("High")
	f.addService(unratedAdmin, "Nails")
	user := f.addUser("alice")

	for _, admin := range []struct {
		id     models.AdminIdentity
		rating int
		shopID string
	}{{lowAdmin, 2, low.ID.Hex()}, {highAdmin, 5, high.ID.Hex()}} {
		f.advance(admin.id, f.book(user, f.addService(admin.id, "Cut")), models.BookingConfirmed, models.BookingCompleted)
		_, err := f.reviews().CreateReview(f.ctx, user, models.CreateReviewRequest{ShopID: admin.shopID, Rating: admin.rating})
		require.NoError(t, err)
	}

	cache := &recordingCache{}
	svc := NewReportService(f.stores, cache)
	listings, err := svc.ListShops(f.ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "High", listings[0].Name)
	assert.Equal(t, "Low", listings[1].Name)
	assert.Equal(t, "Quiet", listings[2].Name)
	assert.Nil(t, listings[2].AverageRating)
	require.Len(t, listings[2].Services, 1)
	assert.Equal(t, "Nails", listings[2].Services[0].Title)

	_, cached := cache.Load(f.ctx)
	assert.True(t, cached)

	// a cached listing is served without touching the stores
	cache.Store(f.ctx, listings[:1])
	again, err := svc.ListShops(f.ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestDashboardWithoutShop(t *testing.T) {
	f := newFixture(t)
	f.addShop("Glow")
	admin := models.AdminIdentity{AdminID: primitive.NewObjectID()}

	report, err := NewReportService(f.stores, nil).Dashboard(f.ctx, admin)
	require.NoError(t, err)
	assert.False(t, report.HasShop)
	assert.Nil(t, report.Stats)
	assert.NotNil(t, report.Bookings)

	_, err = NewReportService(f.stores, nil).Dashboard(f.ctx, f.addUser("alice"))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	admin, shop := f.addShop("Glow")
	cut := f.addService(admin, "Haircut")
	spa := f.addService(admin, "Spa")
	alice := f.addUser("alice")
	bob := f.addUser("bob")

	f.advance(admin, f.book(alice, cut), models.BookingConfirmed, models.BookingCompleted)
	f.advance(admin, f.book(bob, cut), models.BookingConfirmed, models.BookingCompleted)
	f.book(bob, spa)

	for _, r := range []struct {
		who    models.UserIdentity
		rating int
	}{{alice, 5}, {bob, 4}, {bob, 4}} {
		_, err := f.reviews().CreateReview(f.ctx, r.who, models.CreateReviewRequest{ShopID: shop.ID.Hex(), Rating: r.rating})
		require.NoError(t, err)
	}

	shops := NewShopService(f.stores, nil)
	for i := 0; i < 2; i++ {
		_, err := shops.GetShop(f.ctx, shop.ID.Hex())
		require.NoError(t, err)
	}

	report, err := NewReportService(f.stores, nil).Dashboard(f.ctx, admin)
	require.NoError(t, err)
	require.True(t, report.HasShop)
	require.NotNil(t, report.Stats)
	assert.Equal(t, int64(2), report.Stats.Visits)
	assert.Equal(t, 3, report.Stats.BookingsCount)
	assert.Equal(t, 3, report.Stats.ReviewCount)
	require.NotNil(t, report.Stats.AvgRating)
	assert.Equal(t, 4.3, *report.Stats.AvgRating)
	assert.Equal(t, []models.ServiceCount{{Name: "Haircut", Count: 2}, {Name: "Spa", Count: 1}}, report.Stats.TopServices)
	assert.Len(t, report.Bookings, 3)
	assert.Len(t, report.Shop.Services, 2)
}

func TestDashboardUnratedShop(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")

	report, err := NewReportService(f.stores, nil).Dashboard(f.ctx, admin)
	require.NoError(t, err)
	assert.True(t, report.HasShop)
	assert.Nil(t, report.Stats.AvgRating)
	assert.Zero(t, report.Stats.BookingsCount)
	assert.Empty(t, report.Stats.TopServices)
	assert.NotNil(t, report.Bookings)
}
