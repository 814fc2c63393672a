package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating bounds for a review
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating with an optional comment left by a user for a shop
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ShopID    primitive.ObjectID `bson:"shopId" json:"shopId"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// ReviewView is a review with the author's name attached
type ReviewView struct {
	Review
	User *UserSummary `json:"user,omitempty"`
}
