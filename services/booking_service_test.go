package services

import (
	"context"
	"testing"
	"time"

	"go-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateBookingStartsPending(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	service := f.addService(admin, "Haircut")
	user := f.addUser("alice")

	booking := f.book(user, service)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, user.UserID, booking.UserID)
	assert.Equal(t, service.ID, booking.ServiceID)
	assert.False(t, booking.ID.IsZero())
	assert.Equal(t, fixedNow, booking.CreatedAt)
}

func TestCreateBookingRejections(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	service := f.addService(admin, "Haircut")
	user := f.addUser("alice")

	tests := []struct {
		name   string
		caller models.Identity
		req    models.CreateBookingRequest
		kind   error
	}{
		{"admin caller", admin, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-20", Time: "10:00"}, ErrForbidden},
		{"past date", user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-15", Time: "10:00"}, ErrValidation},
		{"earlier today", user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-16", Time: "09:59"}, ErrValidation},
		{"before opening", user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-20", Time: "08:30"}, ErrValidation},
		{"after closing", user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-20", Time: "17:30"}, ErrValidation},
		{"malformed time", user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-20", Time: "25:00"}, ErrValidation},
		{"unpadded hour", user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-20", Time: "1:30"}, ErrValidation},
		{"bad service id", user, models.CreateBookingRequest{ServiceID: "nope", Date: "2026-10-20", Time: "10:00"}, ErrValidation},
		{"unknown service", user, models.CreateBookingRequest{ServiceID: primitive.NewObjectID().Hex(), Date: "2026-10-20", Time: "10:00"}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.bookings().CreateBooking(f.ctx, tt.caller, tt.req)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestCreateBookingComparesClockTimesNumerically(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	price := 30.0
	service, err := NewCatalogService(f.stores, nil).CreateService(f.ctx, admin, models.CreateServiceRequest{
		Title: "Evening cut", Price: &price,
		Availability: &models.AvailabilityRequest{StartTime: "12:00", EndTime: "23:00"},
	})
	require.NoError(t, err)
	user := f.addUser("alice")

	_, err = f.bookings().CreateBooking(f.ctx, user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-20", Time: "1:30"})
	assert.ErrorIs(t, err, ErrValidation)

	booking, err := f.bookings().CreateBooking(f.ctx, user, models.CreateBookingRequest{ServiceID: service.ID.Hex(), Date: "2026-10-20", Time: "23:00"})
	require.NoError(t, err)
	assert.Equal(t, "23:00", booking.Time)
	assert.Equal(t, "2026-10-20", booking.Date)
}

func TestCreateBookingAcceptsCurrentMinute(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	service := f.addService(admin, "Haircut")
	user := f.addUser("alice")

	_, err := f.bookings().CreateBooking(f.ctx, user, models.CreateBookingRequest{
		ServiceID: service.ID.Hex(), Date: "2026-10-16", Time: "10:00",
	})
	assert.NoError(t, err)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	service := f.addService(admin, "Haircut")
	booking := f.book(f.addUser("alice"), service)
	svc := f.bookings()

	comment := "See you soon"
	view, err := svc.UpdateStatus(f.ctx, admin, booking.ID.Hex(), models.UpdateBookingStatusRequest{
		Status: models.BookingConfirmed, AdminComment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, view.Status)
	assert.Equal(t, comment, view.AdminComment)
	require.NotNil(t, view.Service)
	assert.Equal(t, "Haircut", view.Service.Title)

	view, err = svc.UpdateStatus(f.ctx, admin, booking.ID.Hex(), models.UpdateBookingStatusRequest{Status: models.BookingCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, view.Status)
	assert.Equal(t, comment, view.AdminComment, "comment kept when not resent")

	stored, err := f.mem.Bookings.FindByID(f.ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, stored.Status)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	service := f.addService(admin, "Haircut")
	user := f.addUser("alice")

	completed := f.book(user, service)
	f.advance(admin, completed, models.BookingConfirmed, models.BookingCompleted)
	cancelled := f.book(user, service)
	f.advance(admin, cancelled, models.BookingCancelled)
	pending := f.book(user, service)

	tests := []struct {
		name    string
		booking *models.Booking
		to      models.BookingStatus
	}{
		{"completed back to pending", completed, models.BookingPending},
		{"completed to cancelled", completed, models.BookingCancelled},
		{"cancelled to confirmed", cancelled, models.BookingConfirmed},
		{"pending straight to completed", pending, models.BookingCompleted},
		{"pending to pending", pending, models.BookingPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.bookings().UpdateStatus(f.ctx, admin, tt.booking.ID.Hex(), models.UpdateBookingStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	stored, err := f.mem.Bookings.FindByID(f.ctx, completed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, stored.Status)
}

func TestUpdateStatusRequiresOwningAdmin(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	other, _ := f.addShop("Shine")
	service := f.addService(admin, "Haircut")
	user := f.addUser("alice")
	booking := f.book(user, service)
	svc := f.bookings()
	req := models.UpdateBookingStatusRequest{Status: models.BookingConfirmed}

	_, err := svc.UpdateStatus(f.ctx, other, booking.ID.Hex(), req)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(f.ctx, user, booking.ID.Hex(), req)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(f.ctx, admin, primitive.NewObjectID().Hex(), req)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(f.ctx, admin, booking.ID.Hex(), models.UpdateBookingStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrValidation)
}

// staleBookings serves a snapshot taken before another admin's update
type staleBookings struct {
	BookingStore
	snapshot models.Booking
}

func (s staleBookings) FindByID(context.Context, primitive.ObjectID) (*models.Booking, error) {
	b := s.snapshot
	return &b, nil
}

func TestUpdateStatusDetectsConcurrentChange(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.addShop("Glow")
	service := f.addService(admin, "Haircut")
	booking := f.book(f.addUser("alice"), service)
	snapshot := *booking

	f.advance(admin, booking, models.BookingCancelled)

	stores := f.stores
	stores.Bookings = staleBookings{BookingStore: f.mem.Bookings, snapshot: snapshot}
	svc := NewBookingService(stores, nil, time.UTC)

	_, err := svc.UpdateStatus(f.ctx, admin, booking.ID.Hex(), models.UpdateBookingStatusRequest{Status: models.BookingConfirmed})
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := f.mem.Bookings.FindByID(f.ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, stored.Status)
}

func TestListBookings(t *testing.T) {
	f := newFixture(t)
	admin, shop := f.addShop("Glow")
	lonely, _ := f.addShop("Empty")
	haircut := f.addService(admin, "Haircut")
	massage := f.addService(admin, "Massage")
	alice := f.addUser("alice")
	bob := f.addUser("bob")

	svc := f.bookings()
	_, err := svc.CreateBooking(f.ctx, alice, models.CreateBookingRequest{ServiceID: massage.ID.Hex(), Date: "2026-10-21", Time: "09:00"})
	require.NoError(t, err)
	_, err = svc.CreateBooking(f.ctx, bob, models.CreateBookingRequest{ServiceID: haircut.ID.Hex(), Date: "2026-10-20", Time: "15:00"})
	require.NoError(t, err)
	_, err = svc.CreateBooking(f.ctx, alice, models.CreateBookingRequest{ServiceID: haircut.ID.Hex(), Date: "2026-10-20", Time: "11:00"})
	require.NoError(t, err)

	adminViews, err := svc.ListBookings(f.ctx, admin)
	require.NoError(t, err)
	require.Len(t, adminViews, 3)
	assert.Equal(t, "11:00", adminViews[0].Time)
	assert.Equal(t, "15:00", adminViews[1].Time)
	assert.Equal(t, "2026-10-21", adminViews[2].Date)
	require.NotNil(t, adminViews[0].User)
	assert.Equal(t, "alice", adminViews[0].User.Name)
	assert.Equal(t, "Haircut", adminViews[0].Service.Title)

	userViews, err := svc.ListBookings(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, userViews, 2)
	for _, v := range userViews {
		require.NotNil(t, v.Shop)
		assert.Equal(t, shop.Name, v.Shop.Name)
		assert.Nil(t, v.User)
	}

	empty, err := svc.ListBookings(f.ctx, lonely)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNotifyStatusChange(t *testing.T) {
	f := newFixture(t)
	admin, shop := f.addShop("Glow")
	service := f.addService(admin, "Haircut")
	booking := f.book(f.addUser("alice"), service)

	notifier := &recordingNotifier{}
	svc := NewBookingService(f.stores, notifier, time.UTC)
	comment := "Bring a towel"
	view, err := svc.UpdateStatus(f.ctx, admin, booking.ID.Hex(), models.UpdateBookingStatusRequest{
		Status: models.BookingConfirmed, AdminComment: &comment,
	})
	require.NoError(t, err)

	require.NoError(t, svc.NotifyStatusChange(f.ctx, *view))
	require.Len(t, notifier.sent, 1)
	sent := notifier.sent[0]
	assert.Equal(t, "alice@example.com", sent.to)
	assert.Equal(t, "alice", sent.name)
	assert.Equal(t, models.BookingConfirmed, sent.booking.Status)
	assert.Equal(t, comment, sent.booking.AdminComment)
	require.NotNil(t, sent.booking.Shop)
	assert.Equal(t, shop.Name, sent.booking.Shop.Name)
}
