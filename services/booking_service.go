package services

import (
	"context"
	"errors"
	"time"

	"go-booking/models"
	"go-booking/repositories"
)

const (
	dateLayout    = "2006-01-02"
	clockLayout   = "15:04"
	bookingLayout = dateLayout + " " + clockLayout
)

// BookingService enforces the booking lifecycle: users create pending
// bookings and only the admin owning the service's shop moves them along
// pending -> confirmed -> completed, or cancels them before completion.
type BookingService struct {
	stores   Stores
	notifier BookingNotifier
	loc      *time.Location
	now      func() time.Time
}

// NewBookingService creates a BookingService. Booking dates and times are
// interpreted in loc. notifier may be nil.
func NewBookingService(stores Stores, notifier BookingNotifier, loc *time.Location) *BookingService {
	if loc == nil {
		loc = time.Local
	}
	return &BookingService{stores: stores, notifier: notifier, loc: loc, now: time.Now}
}

// CreateBooking reserves a service slot for the calling user. The slot
// must not be in the past and must fall inside the service's daily
// availability window.
func (s *BookingService) CreateBooking(ctx context.Context, caller models.Identity, req models.CreateBookingRequest) (*models.Booking, error) {
	user, err := requireUser(caller, "Admins cannot book services")
	if err != nil {
		return nil, err
	}
	serviceID, err := parseID(req.ServiceID, "service")
	if err != nil {
		return nil, err
	}

	if _, ok := models.ClockMinutes(req.Time); !ok {
		return nil, newError(ErrValidation, "Invalid booking date or time")
	}
	at, err := time.ParseInLocation(bookingLayout, req.Date+" "+req.Time, s.loc)
	if err != nil {
		return nil, newError(ErrValidation, "Invalid booking date or time")
	}
	now := s.now()
	if at.Before(now.In(s.loc).Truncate(time.Minute)) {
		return nil, newError(ErrValidation, "Cannot book appointments in the past")
	}

	service, err := s.stores.Services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, notFound(err, "Service not found")
	}
	slotDate, slotTime := at.Format(dateLayout), at.Format(clockLayout)
	if !service.Availability.Contains(slotTime) {
		return nil, newError(ErrValidation, "Selected time is outside the service availability (%s - %s)",
			service.Availability.StartTime, service.Availability.EndTime)
	}

	booking := &models.Booking{
		UserID:    user.UserID,
		ServiceID: service.ID,
		Date:      slotDate,
		Time:      slotTime,
		Status:    models.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.stores.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateStatus applies an admin's status change to a booking of their
// shop. Only transitions allowed by the lifecycle are accepted and the
// write succeeds only if nobody changed the status in between.
func (s *BookingService) UpdateStatus(ctx context.Context, caller models.Identity, bookingID string, req models.UpdateBookingStatusRequest) (*models.BookingView, error) {
	admin, err := requireAdmin(caller)
	if err != nil {
		return nil, err
	}
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}
	if !req.Status.Valid() {
		return nil, newError(ErrValidation, "Invalid booking status %q", req.Status)
	}

	booking, err := s.stores.Bookings.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Booking not found")
	}
	service, err := s.stores.Services.FindByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, notFound(err, "Service not found")
	}
	shop, err := s.stores.Shops.FindByID(ctx, service.ShopID)
	if err != nil {
		return nil, notFound(err, "Shop not found")
	}
	if shop.AdminID != admin.AdminID {
		return nil, newError(ErrForbidden, "You can only manage bookings of your own shop")
	}

	if !booking.Status.CanTransitionTo(req.Status) {
		return nil, newError(ErrValidation, "Cannot change booking status from %s to %s", booking.Status, req.Status)
	}

	updated, err := s.stores.Bookings.UpdateStatus(ctx, booking.ID, booking.Status, req.Status, req.AdminComment, s.now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrStaleStatus):
			return nil, newError(ErrConflict, "Booking status was changed by someone else, reload and try again")
		case errors.Is(err, repositories.ErrNotFound):
			return nil, newError(ErrNotFound, "Booking not found")
		}
		return nil, err
	}
	return &models.BookingView{Booking: *updated, Service: service}, nil
}

// ListBookings returns the caller's bookings. Admins see every booking of
// their shop's services with the booking user; users see their own
// bookings with the shop they were made at.
func (s *BookingService) ListBookings(ctx context.Context, caller models.Identity) ([]models.BookingView, error) {
	switch c := caller.(type) {
	case models.AdminIdentity:
		shop, err := s.stores.Shops.FindByAdmin(ctx, c.AdminID)
		if errors.Is(err, repositories.ErrNotFound) {
			return []models.BookingView{}, nil
		}
		if err != nil {
			return nil, err
		}
		return shopBookings(ctx, s.stores, shop.ID)
	case models.UserIdentity:
		return userBookings(ctx, s.stores, c.UserID)
	}
	return nil, newError(ErrUnauthorized, "Unauthorized")
}

// NotifyStatusChange emails the booking's owner its current status and
// the admin's comment
func (s *BookingService) NotifyStatusChange(ctx context.Context, view models.BookingView) error {
	if s.notifier == nil {
		return nil
	}
	user, err := s.stores.Users.FindByID(ctx, view.UserID)
	if err != nil {
		return err
	}
	if view.Service != nil && view.Shop == nil {
		if shop, err := s.stores.Shops.FindByID(ctx, view.Service.ShopID); err == nil {
			summary := shop.Summary()
			view.Shop = &summary
		}
	}
	return s.notifier.SendBookingStatusEmail(user.Email, user.Name, view)
}
