package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// bookingTransitions lists the statuses reachable from each non-terminal status
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// Valid reports whether s is one of the four known statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether an admin may move a booking from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a user's reservation of a service at a date and time
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	ServiceID    primitive.ObjectID `bson:"serviceId" json:"serviceId"`
	Date         string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time         string             `bson:"time" json:"time"` // HH:MM
	Status       BookingStatus      `bson:"status" json:"status"`
	AdminComment string             `bson:"adminComment,omitempty" json:"adminComment,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookingView is a booking joined with the documents it references.
// User is set for admin listings, Shop for user listings.
type BookingView struct {
	Booking
	Service *Service     `json:"service,omitempty"`
	Shop    *ShopSummary `json:"shop,omitempty"`
	User    *UserSummary `json:"user,omitempty"`
}
