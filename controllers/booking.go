package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"go-booking/models"
	"go-booking/services"
	"go-booking/utils"

	"github.com/gorilla/mux"
)

const notifyTimeout = 15 * time.Second

// BookingController handles booking requests and status changes
type BookingController struct {
	Bookings *services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// CreateBooking books a service slot for the calling user
func (bc *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	var req models.CreateBookingRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	booking, err := bc.Bookings.CreateBooking(ctx, identity, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

// GetBookings lists the caller's bookings; admins get their shop's bookings
func (bc *BookingController) GetBookings(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	bookings, err := bc.Bookings.ListBookings(ctx, identity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// UpdateBookingStatus moves a booking along its lifecycle (admin only) and
// emails the booking's user in the background
func (bc *BookingController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := caller(w, r)
	if !ok {
		return
	}
	var req models.UpdateBookingStatusRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()

	view, err := bc.Bookings.UpdateStatus(ctx, identity, mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	go func(view models.BookingView) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := bc.Bookings.NotifyStatusChange(ctx, view); err != nil {
			log.Printf("booking %s: status email not sent: %v", view.ID.Hex(), err)
		}
	}(*view)

	utils.RespondWithJSON(w, http.StatusOK, view)
}
