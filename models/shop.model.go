package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop is a storefront owned by exactly one admin
type Shop struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string               `bson:"name" json:"name"`
	Location    string               `bson:"location" json:"location"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Image       string               `bson:"image,omitempty" json:"image,omitempty"`
	ServiceIDs  []primitive.ObjectID `bson:"serviceIds" json:"serviceIds"`
	AdminID     primitive.ObjectID   `bson:"adminId" json:"adminId"`
	Visits      int64                `bson:"visits" json:"visits"`
}

// ShopSummary is the reduced shop projection embedded in a user's booking list
type ShopSummary struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Location string             `json:"location"`
}

// Summary returns the public name/location projection of the shop
func (s Shop) Summary() ShopSummary {
	return ShopSummary{ID: s.ID, Name: s.Name, Location: s.Location}
}

// ShopDetail is a shop with its services populated
type ShopDetail struct {
	Shop
	Services []Service `json:"services"`
}

// ShopListing is a shop annotated with its rating aggregates.
// AverageRating is nil for a shop nobody has reviewed yet.
type ShopListing struct {
	ShopDetail
	AverageRating *float64 `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
}

// RatingSummary holds the raw per-shop rating aggregates
type RatingSummary struct {
	ShopID primitive.ObjectID `bson:"_id" json:"shopId"`
	Count  int                `bson:"count" json:"count"`
	Sum    int                `bson:"sum" json:"sum"`
}
