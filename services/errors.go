package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every error a service returns on purpose is an *Error whose
// Kind is one of these, so callers can branch with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// ErrReviewNotCompleted: the user has bookings at the shop but none completed
	ErrReviewNotCompleted = errors.New("booking not completed")
	// ErrReviewNoBooking: the user never booked anything at the shop
	ErrReviewNoBooking = errors.New("no booking for shop")
)

// Review rejection messages shown to the user
const (
	MsgReviewNotCompleted = `You can only review after your booking is marked as "Completed" by the admin.`
	MsgReviewNoBooking    = "You have no bookings for this shop. Book a service and complete it to leave a review."
)

// Error is a rejected operation with a message safe to show the caller
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
