package models

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default availability window applied when an admin omits one
const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "17:00"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ClockMinutes converts a zero-padded 24h "HH:MM" time to minutes past
// midnight. Unpadded or out of range values are rejected.
func ClockMinutes(hhmm string) (int, bool) {
	if !clockPattern.MatchString(hhmm) {
		return 0, false
	}
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m, true
}

// Availability is the daily window during which a service can be booked
type Availability struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Contains reports whether the "HH:MM" time lies inside the window, bounds included
func (a Availability) Contains(hhmm string) bool {
	at, ok := ClockMinutes(hhmm)
	if !ok {
		return false
	}
	start, okStart := ClockMinutes(a.StartTime)
	end, okEnd := ClockMinutes(a.EndTime)
	return okStart && okEnd && at >= start && at <= end
}

// Service is a bookable offering belonging to one shop
type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ShopID       primitive.ObjectID `bson:"shopid" json:"shopid"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Availability Availability       `bson:"availability" json:"availability"`
}
